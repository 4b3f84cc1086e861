// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"

	"github.com/devblok/koruinfo/device"
)

// Process exit codes
const (
	ExitOK          = 0
	ExitConnection  = 1
	ExitNoDevices   = 2
	ExitEnumeration = 3
	ExitUsage       = 4
)

func exitCode(err error) int {
	var (
		connErr *device.ConnectionError
		enumErr *device.EnumerationError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &connErr):
		return ExitConnection
	case errors.Is(err, device.ErrNoDevices):
		return ExitNoDevices
	case errors.As(err, &enumErr):
		return ExitEnumeration
	default:
		return ExitUsage
	}
}
