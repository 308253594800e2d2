// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package simcore

import (
	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/hostess"
	"github.com/airliftsim/airlift/airlift/interop"
	"github.com/airliftsim/airlift/airlift/passenger"
	"github.com/airliftsim/airlift/airlift/pilot"
)

// SimulationBuilder assembles a boarding simulation: the semaphore set, the
// shared flight state and one instance of each role.
type SimulationBuilder struct {
	cfg       interop.Config
	eventsAPI interop.EventsAPI
}

// NewSimulationBuilder returns a builder for the given protocol constants.
func NewSimulationBuilder(cfg interop.Config) *SimulationBuilder {
	return &SimulationBuilder{
		cfg:       cfg,
		eventsAPI: &interop.NoOpEventsAPI{},
	}
}

// SetEventsAPI sets the persistence sink shared by all roles.
func (b *SimulationBuilder) SetEventsAPI(eventsAPI interop.EventsAPI) *SimulationBuilder {
	b.eventsAPI = eventsAPI
	return b
}

// Build validates the configuration and constructs the simulation. No
// semaphore or shared state exists before this point, so configuration
// errors abort cleanly.
func (b *SimulationBuilder) Build() (*Simulation, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	sems := core.NewSemSet()
	state := interop.NewFlightState()

	passengers := make([]*passenger.Passenger, b.cfg.TotalPassengers)
	for i := range passengers {
		passengers[i] = passenger.New(sems, state, b.eventsAPI)
	}

	return &Simulation{
		cfg:        b.cfg,
		sems:       sems,
		state:      state,
		hostess:    hostess.New(b.cfg, sems, state, b.eventsAPI),
		pilot:      pilot.New(sems, state, b.eventsAPI),
		passengers: passengers,
	}, nil
}

// SetLogLevel sets the log level for internal logging. Needs to be called
// very early during startup to configure logs emitted during initialization
func SetLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	log.SetLevel(level)
}
