// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	log "github.com/sirupsen/logrus"
)

// EnumerateDevices lists the physical devices of the session. The driver is
// asked for the count first, then a buffer of exactly that size is filled.
// Zero devices yields ErrNoDevices.
func (s *Session) EnumerateDevices() ([]PhysicalDevice, error) {
	if !s.Valid() {
		return nil, &EnumerationError{Phase: PhaseCount, Err: ErrSessionClosed}
	}

	var deviceCount uint32
	if err := s.driver.EnumeratePhysicalDevices(s.instance, &deviceCount, nil); err != nil {
		return nil, &EnumerationError{Phase: PhaseCount, Err: err}
	}
	if deviceCount == 0 {
		return nil, ErrNoDevices
	}

	availableDevices := make([]PhysicalDevice, deviceCount)
	if err := s.driver.EnumeratePhysicalDevices(s.instance, &deviceCount, availableDevices); err != nil {
		return nil, &EnumerationError{Phase: PhaseFill, Err: err}
	}
	// the driver never writes past the buffer it was given
	if int(deviceCount) < len(availableDevices) {
		availableDevices = availableDevices[:deviceCount]
	}

	log.WithField("count", len(availableDevices)).Debug("physical devices enumerated")
	return availableDevices, nil
}

func queueFamilies(driver Driver, device PhysicalDevice) []QueueFamilyProperties {
	var familyCount uint32
	driver.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, nil)
	if familyCount == 0 {
		return nil
	}
	families := make([]QueueFamilyProperties, familyCount)
	driver.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, families)
	if int(familyCount) < len(families) {
		families = families[:familyCount]
	}
	return families
}
