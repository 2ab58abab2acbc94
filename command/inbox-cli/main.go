// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inboxd/command/inbox-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "inbox-cli"
	app.Usage = "client for the inboxd authenticated inbox daemon"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/inbox-cli/inbox-cli.json]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate host and EC key pairs, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise inbox-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*inboxd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: "",
					Usage: " base58 program `ID` [fetched from the daemon]",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only: base58 host `ACCOUNT` of somebody else",
				},
				cli.StringFlag{
					Name:  "ec, e",
					Value: "",
					Usage: " receive only: hex EC `IDENTITY` of somebody else",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "bind",
			Usage:  "publish the EC identity of the current identity",
			Flags:  []cli.Flag{},
			Action: runBind,
		},
		{
			Name:      "create-inbox",
			Usage:     "create an empty inbox owned by the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "index, x",
					Value: 0,
					Usage: " inbox disambiguator `INDEX`",
				},
			},
			Action: runCreateInbox,
		},
		{
			Name:      "send",
			Usage:     "append a record to the inbox of another identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*identity name or base58 host `ACCOUNT` of the recipient",
				},
				cli.StringFlag{
					Name:  "payload, m",
					Value: "",
					Usage: "*payload reference `STRING` (e.g. a content URL)",
				},
				cli.UintFlag{
					Name:  "index, x",
					Value: 0,
					Usage: " inbox disambiguator `INDEX`",
				},
			},
			Action: runSend,
		},
		{
			Name:      "read",
			Usage:     "list the records of an inbox in timestamp order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or hex EC `IDENTITY` [current identity]",
				},
				cli.UintFlag{
					Name:  "index, x",
					Value: 0,
					Usage: " inbox disambiguator `INDEX`",
				},
			},
			Action: runRead,
		},
		{
			Name:      "lookup",
			Usage:     "show the EC identity bound to a host account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or base58 host `ACCOUNT` [current identity]",
				},
			},
			Action: runLookup,
		},
		{
			Name:      "derive",
			Usage:     "compute the storage address of an inbox or binding",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "inbox",
					Usage: " `KIND` [inbox|account]",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*hex EC identity or base58 host `ACCOUNT`",
				},
				cli.UintFlag{
					Name:  "index, x",
					Value: 0,
					Usage: " inbox disambiguator `INDEX`",
				},
			},
			Action: runDerive,
		},
		{
			Name:   "info",
			Usage:  "display inboxd status",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display inbox-cli version",
			Action: runVersion,
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			dir, err := checkFileExists(p)
			if nil != err {
				return err
			}
			if !dir {
				return fmt.Errorf("not a directory: %q", p)
			}
			file = path.Join(p, app.Name, app.Name+".json")
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
