// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"
	"fmt"
)

// ErrNoDevices is returned when the driver stack exposes no physical devices.
// It is a valid but empty outcome, not a driver failure.
var ErrNoDevices = errors.New("0 physical devices found")

// ErrSessionClosed is wrapped when a closed session is used
var ErrSessionClosed = errors.New("session is closed")

// ConnectionError is returned when the driver stack refuses to open a session.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "could not create Vulkan instance: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Phase names the half of a count-then-fill query that failed
type Phase string

// Enumeration phases
const (
	PhaseCount Phase = "count"
	PhaseFill  Phase = "fill"
)

// EnumerationError is returned when a counting or filling call fails.
type EnumerationError struct {
	Phase Phase
	Err   error
}

func (e *EnumerationError) Error() string {
	switch e.Phase {
	case PhaseCount:
		return fmt.Sprintf("could not get the number of physical devices: %s", e.Err)
	default:
		return fmt.Sprintf("could not enumerate physical devices: %s", e.Err)
	}
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}
