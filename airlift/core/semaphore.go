// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"
)

// ErrSemCanceled ...
var ErrSemCanceled = errors.New("ErrSemCanceled")

// Semaphore is a counting synchronization object. Wait suspends the caller
// until the internal count is positive, then decrements it. Signal increments
// the count and releases one suspended waiter, if any; the increment persists
// for a future waiter otherwise. Waiters are released in arrival order.
type Semaphore interface {
	Wait() error
	Signal() error
	Value() int
	Waiters() int
	CancelWithError(error)
}

type semImpl struct {
	value     int
	waiters   int
	condition *sync.Cond
	canceled  bool
	err       error
}

// Wait suspends thread execution until the semaphore value is positive
// or the semaphore is canceled via CancelWithError.
func (s *semImpl) Wait() error {
	s.condition.L.Lock()
	defer s.condition.L.Unlock()

	s.waiters++
	for s.value == 0 && !s.canceled {
		s.condition.Wait()
	}
	s.waiters--

	if s.canceled {
		if s.err != nil {
			return s.err
		}
		return ErrSemCanceled
	}

	s.value--
	return nil
}

// Signal increments the semaphore value and awakes one suspended waiter.
func (s *semImpl) Signal() error {
	s.condition.L.Lock()
	defer s.condition.L.Unlock()

	if s.canceled {
		if s.err != nil {
			return s.err
		}
		return ErrSemCanceled
	}

	s.value++
	s.condition.Signal()
	return nil
}

// Value returns the current semaphore value.
func (s *semImpl) Value() int {
	s.condition.L.Lock()
	defer s.condition.L.Unlock()
	return s.value
}

// Waiters returns the number of currently suspended waiters.
func (s *semImpl) Waiters() int {
	s.condition.L.Lock()
	defer s.condition.L.Unlock()
	return s.waiters
}

// CancelWithError cancels the semaphore with error and awakes all suspended
// waiters. Once canceled the semaphore refuses further operations; shared
// state guarded by it can no longer be trusted.
func (s *semImpl) CancelWithError(err error) {
	s.condition.L.Lock()
	defer s.condition.L.Unlock()
	s.canceled = true
	s.err = err
	s.condition.Broadcast()
}

// NewSemaphore returns a new semaphore instance with the given initial value.
func NewSemaphore(value int) Semaphore {
	return &semImpl{
		value:     value,
		condition: sync.NewCond(&sync.Mutex{}),
	}
}
