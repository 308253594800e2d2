// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"sync"
	"time"

	"github.com/airliftsim/airlift/airlift/core/statejson"
)

const (
	// StateSavedEvent emitted on every hostess status transition
	StateSavedEvent = "stateSaved"
	// PassengerBoardedEvent emitted once per passport check
	PassengerBoardedEvent = "passengerBoarded"
	// FlightDepartedEvent emitted once per flight closure
	FlightDepartedEvent = "flightDeparted"
)

// SimEvent is one persisted simulation event.
type SimEvent struct {
	Name      string                           `json:"name"`
	Timestamp int64                            `json:"timestamp"`
	State     statejson.FlightStateDescription `json:"state"`
}

// EventLog is an append-only in-memory record of simulation events,
// populated by the events API and served by the standalone debug server.
type EventLog struct {
	Events []SimEvent `json:"events,omitempty"`
	mutex  sync.Mutex
}

func (l *EventLog) append(name string, state statejson.FlightStateDescription) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.Events = append(l.Events, SimEvent{
		Name:      name,
		Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
		State:     state,
	})
}

// Snapshot returns a copy of the recorded events.
func (l *EventLog) Snapshot() []SimEvent {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	events := make([]SimEvent, len(l.Events))
	copy(events, l.Events)
	return events
}

// NewEventLog ...
func NewEventLog() *EventLog {
	return &EventLog{}
}
