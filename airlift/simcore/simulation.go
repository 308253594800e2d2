// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package simcore

import (
	"golang.org/x/sync/errgroup"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/core/statejson"
	"github.com/airliftsim/airlift/airlift/hostess"
	"github.com/airliftsim/airlift/airlift/interop"
	"github.com/airliftsim/airlift/airlift/passenger"
	"github.com/airliftsim/airlift/airlift/pilot"
)

// Simulation is an assembled boarding simulation: one hostess, one pilot and
// the whole passenger population, communicating exclusively through the
// shared flight state and the semaphore set.
type Simulation struct {
	cfg        interop.Config
	sems       *core.SemSet
	state      *interop.FlightState
	hostess    *hostess.Hostess
	pilot      *pilot.Pilot
	passengers []*passenger.Passenger
}

// Run starts one goroutine per role and blocks until every role has exited
// its loop. The first role failure cancels the semaphore set, waking the
// remaining roles with the same error; no repair is attempted.
func (s *Simulation) Run() error {
	var errg errgroup.Group

	errg.Go(s.runRole(s.hostess.Run))
	errg.Go(s.runRole(s.pilot.Run))
	for _, p := range s.passengers {
		errg.Go(s.runRole(p.Run))
	}

	return errg.Wait()
}

func (s *Simulation) runRole(run func() error) func() error {
	return func() error {
		if err := run(); err != nil {
			s.sems.CancelWithError(err)
			return err
		}
		return nil
	}
}

// Sems exposes the semaphore set for instrumentation.
func (s *Simulation) Sems() *core.SemSet {
	return s.sems
}

// InternalState returns a description of the current shared state for
// debugging purposes. Observes the same mutex discipline as the roles.
func (s *Simulation) InternalState() (*statejson.InternalStateDescription, error) {
	if err := s.sems.Mutex.Wait(); err != nil {
		return nil, err
	}
	desc := s.state.Description()
	if err := s.sems.Mutex.Signal(); err != nil {
		return nil, err
	}

	return &statejson.InternalStateDescription{
		FlightState: &desc,
		Config:      s.cfg.Description(),
	}, nil
}
