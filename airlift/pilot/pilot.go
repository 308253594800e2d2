// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pilot implements the pilot collaborator: the role that authorizes
// boarding windows and departs once the hostess reports the flight closed.
package pilot

import (
	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/interop"
)

// Pilot opens boarding windows and flies closed flights until the whole
// population has been transported.
type Pilot struct {
	sems      *core.SemSet
	state     *interop.FlightState
	eventsAPI interop.EventsAPI
}

// New returns a new Pilot instance.
func New(sems *core.SemSet, state *interop.FlightState, eventsAPI interop.EventsAPI) *Pilot {
	return &Pilot{
		sems:      sems,
		state:     state,
		eventsAPI: eventsAPI,
	}
}

// Run executes the pilot life cycle: open a boarding window, suspend until
// the hostess closes the flight, depart. Before opening the next window the
// plane is emptied and the flight number advanced, keeping exactly one
// flight open at any time.
func (p *Pilot) Run() error {
	for {
		if err := p.sems.ReadyForBoarding.Signal(); err != nil {
			return err
		}
		if err := p.sems.ReadyToFlight.Wait(); err != nil {
			return err
		}

		if err := p.sems.Mutex.Wait(); err != nil {
			return err
		}
		finished := p.state.SimulationFinished
		departed := p.state.CurrentFlightNumber
		if !finished {
			p.state.PassengersInFlight = 0
			p.state.CurrentFlightNumber++
			p.eventsAPI.SaveState(p.state.Description())
		}
		if err := p.sems.Mutex.Signal(); err != nil {
			return err
		}

		log.WithField("flight", departed).Debug("pilot departed")
		if finished {
			log.Info("pilot finished, airlift complete")
			return nil
		}
	}
}
