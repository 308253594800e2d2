// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/airliftsim/airlift/airlift/core/statejson"
	"github.com/airliftsim/airlift/airlift/telemetry"
)

// SimServer is the view of the running simulation served by the debug API.
type SimServer interface {
	InternalState() (*statejson.InternalStateDescription, error)
}

// NewHTTPRouter returns the standalone debug router. It exposes state for
// tests and operators; it is not part of the boarding protocol.
func NewHTTPRouter(sim SimServer, eventsAPI *telemetry.SimEventsAPI) *chi.Mux {
	r := chi.NewRouter()
	r.Use(standaloneAccessLogDecorator)

	r.Get("/test/ping", func(w http.ResponseWriter, r *http.Request) { PingHandler(w, r) })
	r.Get("/test/internalState", func(w http.ResponseWriter, r *http.Request) { InternalStateHandler(w, r, sim) })
	r.Get("/test/eventLog", func(w http.ResponseWriter, r *http.Request) { EventLogHandler(w, r, eventsAPI) })
	return r
}
