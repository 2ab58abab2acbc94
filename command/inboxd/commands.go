// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/inboxd/address"
	"github.com/bitmark-inc/inboxd/inbox"
	rpcinbox "github.com/bitmark-inc/inboxd/rpc/inbox"
	"github.com/bitmark-inc/inboxd/registry"
	"github.com/bitmark-inc/inboxd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run", "config-test", "cfg", "slots", "inbox", "binding":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  slots                               - count the inbox and binding slots\n")
		fmt.Printf("\n")

		fmt.Printf("  inbox ADDRESS                       - dump an inbox slot as JSON to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  binding ADDRESS                     - dump an identity binding slot as JSON to stdout\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the slot pools are open so these commands can read the database
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "slots":
		printJSON(map[string]int{
			"inboxes":  storage.Pool.Inboxes.Count(),
			"bindings": storage.Pool.Bindings.Count(),
		})

	case "inbox":
		a := slotArgument(arguments)
		slot := storage.Pool.Inboxes.Get(a[:])
		if nil == slot {
			exitwithstatus.Message("inbox: %s not found", a)
		}
		current, err := inbox.Load(options.Layout(), slot)
		if nil != err {
			exitwithstatus.Message("inbox: %s  error: %s", a, err)
		}
		printJSON(inboxDump{
			Address:       a,
			Layout:        current.Layout.Name,
			OwnerIdentity: hex.EncodeToString(current.OwnerIdentity),
			OwnerAccount:  hex.EncodeToString(current.OwnerAccount),
			Disambiguator: current.Disambiguator,
			NextIndex:     current.NextIndex,
			Records:       rpcinbox.Entries(inbox.ReadOrdered(current)),
		})

	case "binding":
		a := slotArgument(arguments)
		slot := storage.Pool.Bindings.Get(a[:])
		if nil == slot {
			exitwithstatus.Message("binding: %s not found", a)
		}
		binding, err := registry.Lookup(slot)
		if nil != err {
			exitwithstatus.Message("binding: %s  error: %s", a, err)
		}
		printJSON(bindingDump{
			Address:       a,
			ECIdentity:    hex.EncodeToString(binding.ECIdentity),
			ECSignature:   hex.EncodeToString(binding.ECSignature),
			HostSignature: hex.EncodeToString(binding.HostSignature),
			SequenceIndex: binding.SequenceIndex,
		})

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	log.Infof("command: %s completed", command)

	// indicate processing complete and perform normal exit from main
	return true
}

type inboxDump struct {
	Address       address.Address  `json:"address"`
	Layout        string           `json:"layout"`
	OwnerIdentity string           `json:"ownerIdentity"`
	OwnerAccount  string           `json:"ownerAccount"`
	Disambiguator uint32           `json:"disambiguator"`
	NextIndex     uint32           `json:"nextIndex"`
	Records       []rpcinbox.Entry `json:"records"`
}

type bindingDump struct {
	Address       address.Address `json:"address"`
	ECIdentity    string          `json:"ecIdentity"`
	ECSignature   string          `json:"ecSignature"`
	HostSignature string          `json:"hostSignature"`
	SequenceIndex uint32          `json:"sequenceIndex"`
}

func slotArgument(arguments []string) address.Address {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing address argument")
	}
	a, err := address.FromBase58(arguments[0])
	if nil != err {
		exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
	}
	return a
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	_ = json.Indent(&out, b, "", "  ")
	_, _ = out.WriteTo(os.Stdout)
	_, _ = os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current working directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) > 0 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
