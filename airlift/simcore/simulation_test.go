// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package simcore

import (
	"errors"
	"io/ioutil"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airliftsim/airlift/airlift/core"
	"github.com/airliftsim/airlift/airlift/interop"
	"github.com/airliftsim/airlift/airlift/telemetry"
)

func TestBuilderRejectsInvalidConfiguration(t *testing.T) {
	invalid := []interop.Config{
		{TotalPassengers: 10, MinFlightCapacity: 0, MaxFlightCapacity: 7},
		{TotalPassengers: 10, MinFlightCapacity: 8, MaxFlightCapacity: 7},
		{TotalPassengers: 5, MinFlightCapacity: 2, MaxFlightCapacity: 7},
	}
	for _, cfg := range invalid {
		sim, err := NewSimulationBuilder(cfg).Build()
		assert.Equal(t, interop.ErrInvalidConfiguration, err)
		assert.Nil(t, sim)
	}
}

func TestSimulationRunsToCompletion(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 10, MinFlightCapacity: 5, MaxFlightCapacity: 7}
	sim, err := NewSimulationBuilder(cfg).Build()
	assert.NoError(t, err)

	// completion itself is the deadlock-freedom property: every blocked
	// role eventually received its signal and exited its loop
	assert.NoError(t, sim.Run())

	state, err := sim.InternalState()
	assert.NoError(t, err)
	assert.True(t, state.FlightState.SimulationFinished)
	assert.Equal(t, cfg.TotalPassengers, state.FlightState.TotalPassengersBoarded)

	total := 0
	perFlight := state.FlightState.PassengersPerFlight
	for i, n := range perFlight {
		total += n
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, cfg.MaxFlightCapacity)
		if i < len(perFlight)-1 {
			// only the finishing flight may depart below minimum
			assert.GreaterOrEqual(t, n, cfg.MinFlightCapacity)
		}
	}
	assert.Equal(t, cfg.TotalPassengers, total)
	assert.Equal(t, len(perFlight), state.FlightState.CurrentFlightNumber)
}

func TestSimulationLeavesNoResidualWaits(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 12, MinFlightCapacity: 3, MaxFlightCapacity: 4}
	sim, err := NewSimulationBuilder(cfg).Build()
	assert.NoError(t, err)
	assert.NoError(t, sim.Run())

	sems := sim.Sems()
	for _, sem := range []core.Semaphore{
		sems.ReadyForBoarding,
		sems.PassengersInQueue,
		sems.PassengersWaitInQueue,
		sems.IDShown,
		sems.ReadyToFlight,
	} {
		assert.Equal(t, 0, sem.Value())
		assert.Equal(t, 0, sem.Waiters())
	}
	assert.Equal(t, 1, sems.Mutex.Value())
}

// instrumentedMutex counts concurrent critical-section holders.
type instrumentedMutex struct {
	core.Semaphore
	mutex      sync.Mutex
	holders    int
	maxHolders int
}

func (m *instrumentedMutex) Wait() error {
	if err := m.Semaphore.Wait(); err != nil {
		return err
	}
	m.mutex.Lock()
	m.holders++
	if m.holders > m.maxHolders {
		m.maxHolders = m.holders
	}
	m.mutex.Unlock()
	return nil
}

func (m *instrumentedMutex) Signal() error {
	m.mutex.Lock()
	m.holders--
	m.mutex.Unlock()
	return m.Semaphore.Signal()
}

func TestMutexDiscipline(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 10, MinFlightCapacity: 5, MaxFlightCapacity: 7}
	sim, err := NewSimulationBuilder(cfg).Build()
	assert.NoError(t, err)

	im := &instrumentedMutex{Semaphore: sim.Sems().Mutex}
	sim.Sems().Mutex = im

	assert.NoError(t, sim.Run())

	im.mutex.Lock()
	defer im.mutex.Unlock()
	assert.Equal(t, 1, im.maxHolders)
	assert.Equal(t, 0, im.holders)
}

func TestSubstrateFailureIsFatalToAllRoles(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 6, MinFlightCapacity: 2, MaxFlightCapacity: 4}
	sim, err := NewSimulationBuilder(cfg).Build()
	assert.NoError(t, err)

	boom := errors.New("substrate failure")
	sim.Sems().ReadyForBoarding.CancelWithError(boom)

	assert.Equal(t, boom, sim.Run())
}

func TestEventLogRecordsEveryBoarding(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 10, MinFlightCapacity: 5, MaxFlightCapacity: 7}
	eventsAPI := telemetry.NewSimEventsAPI(ioutil.Discard)
	sim, err := NewSimulationBuilder(cfg).SetEventsAPI(eventsAPI).Build()
	assert.NoError(t, err)
	assert.NoError(t, sim.Run())

	// every flight departure must be preceded by exactly as many boarding
	// events as the flight carried
	boardedSinceDeparture := 0
	totalBoarded := 0
	departures := 0
	for _, event := range eventsAPI.EventLog().Snapshot() {
		switch event.Name {
		case telemetry.PassengerBoardedEvent:
			boardedSinceDeparture++
			totalBoarded++
			assert.Equal(t, totalBoarded, event.State.TotalPassengersBoarded)
		case telemetry.FlightDepartedEvent:
			perFlight := event.State.PassengersPerFlight
			assert.Equal(t, perFlight[len(perFlight)-1], boardedSinceDeparture)
			boardedSinceDeparture = 0
			departures++
		}
	}
	assert.Equal(t, cfg.TotalPassengers, totalBoarded)
	state, err := sim.InternalState()
	assert.NoError(t, err)
	assert.Equal(t, len(state.FlightState.PassengersPerFlight), departures)
}

func TestInternalStateDescribesInitialState(t *testing.T) {
	cfg := interop.Config{TotalPassengers: 10, MinFlightCapacity: 5, MaxFlightCapacity: 7}
	sim, err := NewSimulationBuilder(cfg).Build()
	assert.NoError(t, err)

	state, err := sim.InternalState()
	assert.NoError(t, err)
	assert.Equal(t, "WAITING_FOR_FLIGHT", state.FlightState.HostessStatus)
	assert.Equal(t, 1, state.FlightState.CurrentFlightNumber)
	assert.Equal(t, cfg.TotalPassengers, state.Config.TotalPassengers)
}
