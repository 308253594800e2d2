// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airliftsim/airlift/airlift/core/statejson"
)

func TestEventsAPIRecordsInOrder(t *testing.T) {
	buf := new(bytes.Buffer)
	api := NewSimEventsAPI(buf)

	api.SaveState(statejson.FlightStateDescription{HostessStatus: "WAITING_FOR_FLIGHT"})
	api.PassengerBoarded(statejson.FlightStateDescription{TotalPassengersBoarded: 1})
	api.FlightDeparted(statejson.FlightStateDescription{PassengersPerFlight: []int{1}})

	events := api.EventLog().Snapshot()
	assert.Len(t, events, 3)
	assert.Equal(t, StateSavedEvent, events[0].Name)
	assert.Equal(t, PassengerBoardedEvent, events[1].Name)
	assert.Equal(t, FlightDepartedEvent, events[2].Name)
	assert.Equal(t, 1, events[1].State.TotalPassengersBoarded)

	assert.Contains(t, buf.String(), `"event":"stateSaved"`)
	assert.Contains(t, buf.String(), `"event":"passengerBoarded"`)
	assert.Contains(t, buf.String(), `"event":"flightDeparted"`)
}

func TestEventLogSnapshotIsACopy(t *testing.T) {
	l := NewEventLog()
	l.append(StateSavedEvent, statejson.FlightStateDescription{})

	snapshot := l.Snapshot()
	l.append(StateSavedEvent, statejson.FlightStateDescription{})

	assert.Len(t, snapshot, 1)
	assert.Len(t, l.Snapshot(), 2)
}
