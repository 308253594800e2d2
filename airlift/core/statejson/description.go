// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statejson

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

// FlightStateDescription is a point-in-time snapshot of the shared flight
// state, taken with the state mutex held.
type FlightStateDescription struct {
	HostessStatus          string `json:"hostessStatus"`
	PassengersInFlight     int    `json:"passengersInFlight"`
	PassengersInQueue      int    `json:"passengersInQueue"`
	TotalPassengersBoarded int    `json:"totalPassengersBoarded"`
	CurrentFlightNumber    int    `json:"currentFlightNumber"`
	PassengersPerFlight    []int  `json:"passengersPerFlight"`
	SimulationFinished     bool   `json:"simulationFinished"`
}

// ConfigDescription ...
type ConfigDescription struct {
	TotalPassengers   int `json:"totalPassengers"`
	MinFlightCapacity int `json:"minFlightCapacity"`
	MaxFlightCapacity int `json:"maxFlightCapacity"`
}

// InternalStateDescription describes internal state of the simulation for
// debugging purposes
type InternalStateDescription struct {
	FlightState *FlightStateDescription `json:"flightState"`
	Config      ConfigDescription       `json:"config"`
}

func (s *InternalStateDescription) AsJSON() []byte {
	bytes, err := json.Marshal(s)
	if err != nil {
		log.Panicf("Failed to marshall internal states: %s", err)
	}
	return bytes
}
