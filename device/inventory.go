// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Inventory collects a Report for every physical device of a driver stack.
type Inventory struct {
	Driver      Driver
	Application ApplicationInfo

	// ExtendedCapabilities decodes the provisional video queue bits
	ExtendedCapabilities bool

	// Parallel inspects each device in its own goroutine
	Parallel bool
}

// Collect opens a session, enumerates and inspects all devices and closes
// the session before returning, whatever the outcome. Reports come back in
// enumeration order; on error no reports are returned.
func (inv Inventory) Collect() ([]Report, error) {
	session, err := Open(inv.Driver, inv.Application)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	physicalDevices, err := session.EnumerateDevices()
	if err != nil {
		return nil, err
	}
	log.Debugf("Found %d physical device(s)", len(physicalDevices))

	inspector := NewInspector(inv.Driver, InspectorOptions{
		ExtendedCapabilities: inv.ExtendedCapabilities,
	})

	reports := make([]Report, len(physicalDevices))
	if !inv.Parallel || len(physicalDevices) == 1 {
		for i, pd := range physicalDevices {
			reports[i] = inspector.Inspect(i, pd)
		}
		return reports, nil
	}

	var (
		wg      sync.WaitGroup
		once    sync.Once
		panicky interface{}
	)
	for i, pd := range physicalDevices {
		wg.Add(1)
		go func(i int, pd PhysicalDevice) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { panicky = r })
				}
			}()
			reports[i] = inspector.Inspect(i, pd)
		}(i, pd)
	}
	wg.Wait()
	// resurface the panic here so the session is still closed
	if panicky != nil {
		panic(panicky)
	}
	return reports, nil
}
