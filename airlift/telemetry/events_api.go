// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/airliftsim/airlift/airlift/core/statejson"
)

// SimEventsAPI is the persistence sink for the boarding protocol: every
// event is appended to the in-memory event log and written as a JSON log
// line to the snapshot destination. Fire-and-forget; callers hold the state
// mutex, so nothing here blocks on protocol semaphores.
type SimEventsAPI struct {
	log      *logrus.Logger
	eventLog *EventLog
}

// NewSimEventsAPI returns an events API writing JSON snapshots to w.
func NewSimEventsAPI(w io.Writer) *SimEventsAPI {
	formatter := logrus.JSONFormatter{}
	formatter.DisableTimestamp = true
	logger := new(logrus.Logger)
	logger.Out = w
	logger.Formatter = &formatter
	logger.Level = logrus.InfoLevel
	return &SimEventsAPI{
		log:      logger,
		eventLog: NewEventLog(),
	}
}

// SaveState persists a full state snapshot.
func (s *SimEventsAPI) SaveState(state statejson.FlightStateDescription) {
	s.record(StateSavedEvent, state)
}

// PassengerBoarded persists a passenger-boarded record.
func (s *SimEventsAPI) PassengerBoarded(state statejson.FlightStateDescription) {
	s.record(PassengerBoardedEvent, state)
}

// FlightDeparted persists a flight-departed record.
func (s *SimEventsAPI) FlightDeparted(state statejson.FlightStateDescription) {
	s.record(FlightDepartedEvent, state)
}

// EventLog returns the in-memory event record backing this API.
func (s *SimEventsAPI) EventLog() *EventLog {
	return s.eventLog
}

func (s *SimEventsAPI) record(name string, state statejson.FlightStateDescription) {
	s.eventLog.append(name, state)
	s.log.WithFields(logrus.Fields{
		"event": name,
		"state": state,
	}).Info(name)
}
