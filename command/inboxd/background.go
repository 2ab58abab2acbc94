// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/inboxd/background"
	"github.com/bitmark-inc/inboxd/configuration"
	"github.com/bitmark-inc/inboxd/metrics"
	"github.com/bitmark-inc/inboxd/rpc"
	"github.com/bitmark-inc/inboxd/rpc/ratelimit"
)

const (
	sampleInterval = 30 * time.Second
)

type counted interface {
	Count() int
}

// applies new rate limits when the configuration file changes
//
// only client_rpc.limits is applied; any other change needs a restart
type reloader struct {
	fileName string
	watcher  configuration.Watcher
	apply    func(ratelimit.Configuration) error
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	log.Infof("reload: watching %q", r.fileName)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.watcher.Change():
			c, err := getConfiguration(r.fileName)
			if nil != err {
				log.Errorf("reload: %q  error: %s", r.fileName, err)
				continue loop
			}
			if err := r.apply(c.ClientRPC.Limits); nil != err {
				log.Errorf("reload: set limits error: %s", err)
				continue loop
			}
			log.Info("reload: rate limits updated")

		case <-r.watcher.Remove():
			log.Warnf("reload: %q removed, keeping current limits", r.fileName)
		}
	}
	r.watcher.Stop()
	log.Info("reload: stopped")
}

// publishes the number of allocated slots of each pool
type sampler struct {
	interval time.Duration
	pools    map[string]counted
}

func (s *sampler) Run(args interface{}, shutdown <-chan struct{}) {
	log := args.(*logger.L)

	s.sample(log)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(s.interval):
			s.sample(log)
		}
	}
	log.Info("sampler: stopped")
}

func (s *sampler) sample(log *logger.L) {
	for name, pool := range s.pools {
		n := pool.Count()
		metrics.Slots.WithLabelValues(name).Set(float64(n))
		log.Debugf("sampler: pool: %s  slots: %d", name, n)
	}
}

// start the configuration reloader and the slot sampler
//
// the reloader is omitted when the file cannot be watched
func startBackground(log *logger.L, fileName string, inboxes counted, bindings counted) *background.T {
	processes := background.Processes{
		&sampler{
			interval: sampleInterval,
			pools: map[string]counted{
				"inboxes":  inboxes,
				"bindings": bindings,
			},
		},
	}

	w, err := configuration.NewWatcher(fileName, logger.New("watcher"))
	if nil == err {
		err = w.Start()
	}
	if nil != err {
		log.Errorf("configuration watcher error: %s  limits will not be reloaded", err)
		if nil != w {
			w.Stop()
		}
	} else {
		processes = append(processes, &reloader{
			fileName: fileName,
			watcher:  w,
			apply:    rpc.SetLimits,
		})
	}

	return background.Start(processes, logger.New("background"))
}
