// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/simcore"
	"github.com/airliftsim/airlift/airlift/standalone"
	"github.com/airliftsim/airlift/airlift/telemetry"
)

func startHTTPServer(ipport string, sim *simcore.Simulation, eventsAPI *telemetry.SimEventsAPI) {
	srv := &http.Server{
		Addr:    ipport,
		Handler: standalone.NewHTTPRouter(sim, eventsAPI),
	}

	log.Warnf("Listening on %s", ipport)
	if err := srv.ListenAndServe(); err != nil {
		log.Panic(err)
	}
}
