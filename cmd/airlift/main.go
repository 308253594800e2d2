// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/interop"
	"github.com/airliftsim/airlift/airlift/logging"
	"github.com/airliftsim/airlift/airlift/simcore"
	"github.com/airliftsim/airlift/airlift/telemetry"
)

type options struct {
	LogLevel          string `long:"log-level" default:"info" description:"log level"`
	DebugAddr         string `long:"debug-addr" default:"" description:"address of the debug state API, disabled when empty"`
	TotalPassengers   int    `long:"passengers" short:"n" default:"20" description:"total passenger population (N)"`
	MinFlightCapacity int    `long:"minfc" default:"5" description:"minimum passengers to consider closing a flight early"`
	MaxFlightCapacity int    `long:"maxfc" default:"10" description:"maximum passengers per flight"`
}

func main() {
	opts, args := getCLIArgs()
	simcore.SetLogLevel(opts.LogLevel)

	// Bootstrap parameters must be valid before any semaphore or shared
	// state is constructed.
	boot, err := getBootstrapParams(args)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse bootstrap parameters:", os.Args)
	}

	errOut, err := os.OpenFile(boot.errorDest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.WithError(err).Fatal("Failed to open error output destination")
	}
	logging.SetOutput(errOut)

	snapOut, err := os.Create(boot.snapshotDest)
	if err != nil {
		log.WithError(err).Fatal("Failed to open snapshot destination")
	}
	defer snapOut.Close()
	eventsAPI := telemetry.NewSimEventsAPI(snapOut)

	cfg := interop.Config{
		TotalPassengers:   opts.TotalPassengers,
		MinFlightCapacity: opts.MinFlightCapacity,
		MaxFlightCapacity: opts.MaxFlightCapacity,
	}
	sim, err := simcore.NewSimulationBuilder(cfg).SetEventsAPI(eventsAPI).Build()
	if err != nil {
		log.WithError(err).Fatal("Failed to build simulation")
	}

	if opts.DebugAddr != "" {
		go startHTTPServer(opts.DebugAddr, sim, eventsAPI)
	}

	log.WithField("accessKey", boot.accessKey).Infof("airlift starting (N=%d, MINFC=%d, MAXFC=%d)",
		cfg.TotalPassengers, cfg.MinFlightCapacity, cfg.MaxFlightCapacity)

	if err := sim.Run(); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
	log.Info("airlift finished")
}

func getCLIArgs() (options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	args, err := parser.ParseArgs(os.Args)

	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	return opts, args
}
