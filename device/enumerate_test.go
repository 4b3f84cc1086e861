// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/koruinfo/device"
	"github.com/devblok/koruinfo/device/devicetest"
)

func openSession(c *qt.C, driver *devicetest.Driver) *device.Session {
	session, err := device.Open(driver, device.DefaultApplicationInfo)
	c.Assert(err, qt.IsNil)
	c.Cleanup(session.Close)
	return session
}

func TestEnumerateDevices(t *testing.T) {
	c := qt.New(t)
	driver := &devicetest.Driver{Devices: []devicetest.Device{
		devicetest.GPU("first", 0x10DE),
		devicetest.GPU("second", 0x1002),
	}}
	session := openSession(c, driver)

	devices, err := session.EnumerateDevices()
	c.Assert(err, qt.IsNil)
	c.Assert(devices, qt.HasLen, 2)
	c.Assert(driver.CountCalls(), qt.Equals, 1)
	c.Assert(driver.FillCalls(), qt.Equals, 1)
}

func TestEnumerateDevicesNeverExceedsCount(t *testing.T) {
	c := qt.New(t)
	for n := 1; n <= 4; n++ {
		for limit := 0; limit <= n; limit++ {
			driver := &devicetest.Driver{FillLimit: limit}
			for i := 0; i < n; i++ {
				driver.Devices = append(driver.Devices, devicetest.GPU("gpu", 0x8086))
			}
			session := openSession(c, driver)

			devices, err := session.EnumerateDevices()
			c.Assert(err, qt.IsNil)
			c.Assert(len(devices) <= n, qt.IsTrue)
			if limit > 0 {
				c.Assert(devices, qt.HasLen, limit)
			}
			for _, d := range devices {
				c.Assert(d, qt.Not(qt.IsNil))
			}
		}
	}
}

func TestEnumerateDevicesNoDevices(t *testing.T) {
	c := qt.New(t)
	driver := &devicetest.Driver{}
	session := openSession(c, driver)

	devices, err := session.EnumerateDevices()
	c.Assert(devices, qt.IsNil)
	c.Assert(errors.Is(err, device.ErrNoDevices), qt.IsTrue)
	c.Assert(driver.FillCalls(), qt.Equals, 0)
}

func TestEnumerateDevicesFailures(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name   string
		driver *devicetest.Driver
		phase  device.Phase
		cause  error
	}{{
		name:   "count phase",
		driver: &devicetest.Driver{FailCount: true, Devices: []devicetest.Device{devicetest.GPU("gpu", 0x10DE)}},
		phase:  device.PhaseCount,
		cause:  devicetest.ErrCount,
	}, {
		name:   "fill phase",
		driver: &devicetest.Driver{FailFill: true, Devices: []devicetest.Device{devicetest.GPU("gpu", 0x10DE)}},
		phase:  device.PhaseFill,
		cause:  devicetest.ErrFill,
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			session := openSession(c, test.driver)
			devices, err := session.EnumerateDevices()
			c.Assert(devices, qt.IsNil)

			var enumErr *device.EnumerationError
			c.Assert(errors.As(err, &enumErr), qt.IsTrue)
			c.Assert(enumErr.Phase, qt.Equals, test.phase)
			c.Assert(errors.Is(err, test.cause), qt.IsTrue)
			c.Assert(errors.Is(err, device.ErrNoDevices), qt.IsFalse)
		})
	}
}

func TestEnumerateDevicesClosedSession(t *testing.T) {
	c := qt.New(t)
	driver := &devicetest.Driver{Devices: []devicetest.Device{devicetest.GPU("gpu", 0x10DE)}}
	session := openSession(c, driver)
	session.Close()

	_, err := session.EnumerateDevices()
	c.Assert(errors.Is(err, device.ErrSessionClosed), qt.IsTrue)
	c.Assert(driver.CountCalls(), qt.Equals, 0)
}
