// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package hostess implements the boarding coordinator: the role that pulls
// passengers out of the queue one by one, checks their passports and decides
// when the open flight closes.
//
// Life cycle of the hostess:
//
//	WaitForNextFlight
//	WaitForPassenger
//	CheckPassport
//	SignalReadyToFlight
package hostess

import (
	log "github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/interop"
)

// Hostess coordinates boarding between the pilot and the passengers through
// the shared flight state and the semaphore set.
type Hostess struct {
	cfg       interop.Config
	sems      *core.SemSet
	state     *interop.FlightState
	eventsAPI interop.EventsAPI
}

// New returns a new Hostess instance.
func New(cfg interop.Config, sems *core.SemSet, state *interop.FlightState, eventsAPI interop.EventsAPI) *Hostess {
	return &Hostess{
		cfg:       cfg,
		sems:      sems,
		state:     state,
		eventsAPI: eventsAPI,
	}
}

// Run executes the hostess life cycle until the whole passenger population
// has boarded. Any semaphore failure is fatal to the role: the error is
// returned immediately and no repair of the shared state is attempted, since
// its consistency is already suspect.
func (h *Hostess) Run() error {
	boarded := 0
	for boarded < h.cfg.TotalPassengers {
		if err := h.WaitForNextFlight(); err != nil {
			return err
		}
		for {
			if err := h.WaitForPassenger(); err != nil {
				return err
			}
			last, err := h.CheckPassport()
			if err != nil {
				return err
			}
			boarded++
			if last {
				break
			}
		}
		if err := h.SignalReadyToFlight(); err != nil {
			return err
		}
	}
	log.WithField("passengersBoarded", boarded).Info("hostess finished")
	return nil
}

// WaitForNextFlight updates and persists the hostess status, then suspends
// until the pilot opens the next boarding window.
func (h *Hostess) WaitForNextFlight() error {
	if err := h.sems.Mutex.Wait(); err != nil {
		return err
	}
	h.state.HostessStatus = interop.WaitingForFlight
	h.eventsAPI.SaveState(h.state.Description())
	if err := h.sems.Mutex.Signal(); err != nil {
		return err
	}

	return h.sems.ReadyForBoarding.Wait()
}

// WaitForPassenger updates and persists the hostess status, then suspends
// until a passenger arrives at the queue.
func (h *Hostess) WaitForPassenger() error {
	if err := h.sems.Mutex.Wait(); err != nil {
		return err
	}
	h.state.HostessStatus = interop.WaitingForPassenger
	h.eventsAPI.SaveState(h.state.Description())
	if err := h.sems.Mutex.Signal(); err != nil {
		return err
	}

	return h.sems.PassengersInQueue.Wait()
}

// CheckPassport admits one passenger out of the queue, waits for them to
// present identification, then counts them in and evaluates the
// flight-closure predicate. Returns true if this passenger closed the
// flight, that is when any of:
//   - the flight is at its maximum capacity
//   - the flight is at or above minimum capacity and nobody is waiting
//   - the whole population has boarded
func (h *Hostess) CheckPassport() (bool, error) {
	if err := h.sems.Mutex.Wait(); err != nil {
		return false, err
	}
	h.state.HostessStatus = interop.CheckingPassport
	h.eventsAPI.SaveState(h.state.Description())
	if err := h.sems.Mutex.Signal(); err != nil {
		return false, err
	}

	if err := h.sems.PassengersWaitInQueue.Signal(); err != nil {
		return false, err
	}
	if err := h.sems.IDShown.Wait(); err != nil {
		return false, err
	}

	if err := h.sems.Mutex.Wait(); err != nil {
		return false, err
	}
	h.state.PassengersInQueue--
	h.state.PassengersInFlight++
	h.state.TotalPassengersBoarded++

	full := h.state.PassengersInFlight == h.cfg.MaxFlightCapacity
	minimumMetQueueEmpty := h.state.PassengersInFlight >= h.cfg.MinFlightCapacity && h.state.PassengersInQueue == 0
	populationExhausted := h.state.TotalPassengersBoarded == h.cfg.TotalPassengers
	last := full || minimumMetQueueEmpty || populationExhausted

	log.WithFields(log.Fields{
		"flight":               h.state.CurrentFlightNumber,
		"passengersInFlight":   h.state.PassengersInFlight,
		"full":                 full,
		"minimumMetQueueEmpty": minimumMetQueueEmpty,
		"populationExhausted":  populationExhausted,
	}).Debug("passport checked")

	h.eventsAPI.PassengerBoarded(h.state.Description())
	h.eventsAPI.SaveState(h.state.Description())
	if err := h.sems.Mutex.Signal(); err != nil {
		return false, err
	}

	return last, nil
}

// SignalReadyToFlight closes the open flight: records its passenger count,
// decides whether the airlift is finished and hands the flight to the pilot.
// The pilot notification is emitted after the mutex is released.
func (h *Hostess) SignalReadyToFlight() error {
	if err := h.sems.Mutex.Wait(); err != nil {
		return err
	}
	h.state.HostessStatus = interop.ReadyToFly
	h.state.PassengersPerFlight = append(h.state.PassengersPerFlight, h.state.PassengersInFlight)
	h.state.SimulationFinished = h.state.TotalPassengersBoarded == h.cfg.TotalPassengers

	log.WithFields(log.Fields{
		"flight":             h.state.CurrentFlightNumber,
		"passengersInFlight": h.state.PassengersInFlight,
		"finished":           h.state.SimulationFinished,
	}).Info("flight ready to depart")

	h.eventsAPI.SaveState(h.state.Description())
	h.eventsAPI.FlightDeparted(h.state.Description())
	if err := h.sems.Mutex.Signal(); err != nil {
		return err
	}

	return h.sems.ReadyToFlight.Signal()
}
