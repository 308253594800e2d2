// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package passenger implements the passenger collaborator: the role that
// enters the queue, waits to be called to the check desk and presents
// identification.
package passenger

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/interop"
)

// Passenger is a single traveler going through the queue once.
type Passenger struct {
	ID uuid.UUID

	sems      *core.SemSet
	state     *interop.FlightState
	eventsAPI interop.EventsAPI
}

// New returns a new Passenger instance with a fresh identity.
func New(sems *core.SemSet, state *interop.FlightState, eventsAPI interop.EventsAPI) *Passenger {
	return &Passenger{
		ID:        uuid.New(),
		sems:      sems,
		state:     state,
		eventsAPI: eventsAPI,
	}
}

// Run executes the passenger life cycle: join the queue, announce the
// arrival, suspend until called to the check desk, show identification.
func (p *Passenger) Run() error {
	if err := p.sems.Mutex.Wait(); err != nil {
		return err
	}
	p.state.PassengersInQueue++
	p.eventsAPI.SaveState(p.state.Description())
	if err := p.sems.Mutex.Signal(); err != nil {
		return err
	}

	if err := p.sems.PassengersInQueue.Signal(); err != nil {
		return err
	}

	if err := p.sems.PassengersWaitInQueue.Wait(); err != nil {
		return err
	}

	log.WithField("passenger", p.ID).Debug("passenger showing identification")
	return p.sems.IDShown.Signal()
}
