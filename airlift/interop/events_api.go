// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"github.com/airliftsim/airlift/airlift/core/statejson"
)

// EventsAPI is the persistence collaborator contract: a fire-and-forget
// sink for state snapshots and domain events. The protocol never consults
// its results. SaveState is called on every hostess status transition;
// PassengerBoarded once per passport check; FlightDeparted once per flight
// closure. All three are invoked with the state mutex held by the caller,
// so implementations must not block on protocol semaphores.
type EventsAPI interface {
	SaveState(state statejson.FlightStateDescription)
	PassengerBoarded(state statejson.FlightStateDescription)
	FlightDeparted(state statejson.FlightStateDescription)
}

// NoOpEventsAPI ...
type NoOpEventsAPI struct{}

func (s *NoOpEventsAPI) SaveState(statejson.FlightStateDescription)        {}
func (s *NoOpEventsAPI) PassengerBoarded(statejson.FlightStateDescription) {}
func (s *NoOpEventsAPI) FlightDeparted(statejson.FlightStateDescription)   {}
