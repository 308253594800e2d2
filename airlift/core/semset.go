// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// SemSet is the fixed set of semaphores that carries the boarding protocol.
// Mutex guards every read-modify-write of the shared flight state; the
// remaining five are rendezvous semaphores between the roles. Mutex must
// never be held across a Wait on any other member of the set.
type SemSet struct {
	// Mutex is binary and protects the shared flight state.
	Mutex Semaphore
	// ReadyForBoarding is signaled once per flight by the pilot and
	// consumed once by the hostess to start a boarding cycle.
	ReadyForBoarding Semaphore
	// PassengersInQueue is signaled once per arriving passenger and
	// consumed once per passenger accepted into passport check.
	PassengersInQueue Semaphore
	// PassengersWaitInQueue is signaled by the hostess to admit the next
	// passenger out of the queue toward the check desk.
	PassengersWaitInQueue Semaphore
	// IDShown is signaled by a passenger once identification is presented
	// and consumed by the hostess to proceed.
	IDShown Semaphore
	// ReadyToFlight is signaled by the hostess when a flight closes and
	// consumed by the pilot to initiate departure.
	ReadyToFlight Semaphore
}

// NewSemSet returns a semaphore set in its initial protocol state: the mutex
// open, every rendezvous semaphore zero.
func NewSemSet() *SemSet {
	return &SemSet{
		Mutex:                 NewSemaphore(1),
		ReadyForBoarding:      NewSemaphore(0),
		PassengersInQueue:     NewSemaphore(0),
		PassengersWaitInQueue: NewSemaphore(0),
		IDShown:               NewSemaphore(0),
		ReadyToFlight:         NewSemaphore(0),
	}
}

// CancelWithError cancels every semaphore in the set, waking all suspended
// roles with the given error.
func (s *SemSet) CancelWithError(err error) {
	s.Mutex.CancelWithError(err)
	s.ReadyForBoarding.CancelWithError(err)
	s.PassengersInQueue.CancelWithError(err)
	s.PassengersWaitInQueue.CancelWithError(err)
	s.IDShown.CancelWithError(err)
	s.ReadyToFlight.CancelWithError(err)
}
