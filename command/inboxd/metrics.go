// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/inboxd/fault"
	"github.com/bitmark-inc/inboxd/util"
)

const (
	metricsPath            = "/metrics"
	metricsShutdownTimeout = 5 * time.Second
)

// serve the default prometheus registry on each address
//
// this is plain HTTP and separate from the TLS client RPC
func startMetrics(log *logger.L, listen []string) ([]*http.Server, error) {
	if 0 == len(listen) {
		log.Info("metrics: disabled")
		return nil, nil
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())

	servers := make([]*http.Server, 0, len(listen))
	for _, address := range listen {
		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			stopMetrics(log, servers)
			return nil, fault.Wrapf(err, "metrics listen: %q", address)
		}
		l, err := net.Listen("tcp", canonical)
		if nil != err {
			stopMetrics(log, servers)
			return nil, err
		}

		server := &http.Server{
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		servers = append(servers, server)

		log.Infof("metrics listen on: %s%s", l.Addr(), metricsPath)
		go func(s *http.Server, l net.Listener) {
			if err := s.Serve(l); nil != err && http.ErrServerClosed != err {
				log.Errorf("metrics server: %s  error: %s", l.Addr(), err)
			}
		}(server, l)
	}
	return servers, nil
}

func stopMetrics(log *logger.L, servers []*http.Server) {
	for _, s := range servers {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		if err := s.Shutdown(ctx); nil != err {
			log.Warnf("metrics shutdown error: %s", err)
		}
		cancel()
	}
}
