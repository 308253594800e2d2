// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"errors"

	"github.com/airliftsim/airlift/airlift/core/statejson"
)

// ErrInvalidConfiguration returned when the capacity constants violate
// 1 <= MINFC <= MAXFC <= N
var ErrInvalidConfiguration = errors.New("ErrInvalidConfiguration")

// HostessStatus is the hostess position in her life cycle, recorded in the
// shared flight state. Owned and mutated exclusively by the hostess, under
// the state mutex.
type HostessStatus int

const (
	// WaitingForFlight hostess suspended until the pilot opens a boarding window
	WaitingForFlight HostessStatus = iota
	// WaitingForPassenger hostess suspended until a passenger arrives
	WaitingForPassenger
	// CheckingPassport hostess verifying the admitted passenger's identification
	CheckingPassport
	// ReadyToFly hostess closed the flight and handed it to the pilot
	ReadyToFly
)

func (s HostessStatus) String() string {
	switch s {
	case WaitingForFlight:
		return "WAITING_FOR_FLIGHT"
	case WaitingForPassenger:
		return "WAITING_FOR_PASSENGER"
	case CheckingPassport:
		return "CHECKING_PASSPORT"
	case ReadyToFly:
		return "READY_TO_FLY"
	}
	return "UNKNOWN"
}

// Config holds the constants fixing the protocol, supplied by bootstrap.
type Config struct {
	// TotalPassengers is the passenger population size N.
	TotalPassengers int
	// MinFlightCapacity is the minimum number of boarded passengers for a
	// flight to consider closing early.
	MinFlightCapacity int
	// MaxFlightCapacity is the maximum number of passengers per flight.
	MaxFlightCapacity int
}

// Validate checks 1 <= MINFC <= MAXFC <= N.
func (c Config) Validate() error {
	if c.MinFlightCapacity < 1 ||
		c.MaxFlightCapacity < c.MinFlightCapacity ||
		c.TotalPassengers < c.MaxFlightCapacity {
		return ErrInvalidConfiguration
	}
	return nil
}

// Description ...
func (c Config) Description() statejson.ConfigDescription {
	return statejson.ConfigDescription{
		TotalPassengers:   c.TotalPassengers,
		MinFlightCapacity: c.MinFlightCapacity,
		MaxFlightCapacity: c.MaxFlightCapacity,
	}
}

// FlightState is the single shared structure concurrently accessed by all
// roles. Every field is read and written only while the state mutex
// semaphore is held by the accessing role.
type FlightState struct {
	// HostessStatus current hostess life cycle position.
	HostessStatus HostessStatus
	// PassengersInFlight passengers already checked in for the current,
	// still-open flight. Incremented only inside the passport-check step.
	PassengersInFlight int
	// PassengersInQueue passengers currently waiting to be checked.
	// Incremented by a passenger on arrival, decremented by the hostess
	// during passport check.
	PassengersInQueue int
	// TotalPassengersBoarded monotonically increasing count across the
	// whole simulation, bounded by the population size.
	TotalPassengersBoarded int
	// CurrentFlightNumber 1-based index of the flight currently loading.
	CurrentFlightNumber int
	// PassengersPerFlight one entry per completed flight, recorded at
	// flight-close time. Append-only.
	PassengersPerFlight []int
	// SimulationFinished set true exactly once, when the whole population
	// has boarded.
	SimulationFinished bool
}

// NewFlightState returns the initial shared state: all counters zero, first
// flight open, hostess waiting for it.
func NewFlightState() *FlightState {
	return &FlightState{
		HostessStatus:       WaitingForFlight,
		CurrentFlightNumber: 1,
	}
}

// Description snapshots the state for the persistence sink. Must be called
// with the state mutex held.
func (s *FlightState) Description() statejson.FlightStateDescription {
	perFlight := make([]int, len(s.PassengersPerFlight))
	copy(perFlight, s.PassengersPerFlight)
	return statejson.FlightStateDescription{
		HostessStatus:          s.HostessStatus.String(),
		PassengersInFlight:     s.PassengersInFlight,
		PassengersInQueue:      s.PassengersInQueue,
		TotalPassengersBoarded: s.TotalPassengersBoarded,
		CurrentFlightNumber:    s.CurrentFlightNumber,
		PassengersPerFlight:    perFlight,
		SimulationFinished:     s.SimulationFinished,
	}
}
