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

func TestOpenPassesApplicationInfo(t *testing.T) {
	c := qt.New(t)
	driver := &devicetest.Driver{}

	info := device.ApplicationInfo{
		ApplicationName:    "Dynamic Loader",
		ApplicationVersion: device.MakeVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      device.MakeVersion(1, 0, 0),
		APIVersion:         device.MakeVersion(1, 0, 0),
	}
	session, err := device.Open(driver, info)
	c.Assert(err, qt.IsNil)
	c.Assert(session.Valid(), qt.IsTrue)
	c.Assert(driver.LastApplication(), qt.DeepEquals, info)

	session.Close()
	c.Assert(session.Valid(), qt.IsFalse)
	c.Assert(driver.Destroyed(), qt.Equals, 1)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := qt.New(t)
	driver := &devicetest.Driver{}

	session, err := device.Open(driver, device.DefaultApplicationInfo)
	c.Assert(err, qt.IsNil)
	session.Close()
	session.Close()
	c.Assert(driver.Destroyed(), qt.Equals, 1)

	var nilSession *device.Session
	nilSession.Close()
	c.Assert(nilSession.Valid(), qt.IsFalse)
}

func TestOpenFailures(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name   string
		driver device.Driver
		info   device.ApplicationInfo
	}{{
		name:   "driver refuses",
		driver: &devicetest.Driver{FailCreate: true},
		info:   device.DefaultApplicationInfo,
	}, {
		name:   "no driver",
		driver: nil,
		info:   device.DefaultApplicationInfo,
	}, {
		name:   "missing application name",
		driver: &devicetest.Driver{},
		info:   device.ApplicationInfo{APIVersion: device.MakeVersion(1, 0, 0)},
	}, {
		name:   "missing API version",
		driver: &devicetest.Driver{},
		info:   device.ApplicationInfo{ApplicationName: "koruinfo"},
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			session, err := device.Open(test.driver, test.info)
			c.Assert(session, qt.IsNil)
			var connErr *device.ConnectionError
			c.Assert(errors.As(err, &connErr), qt.IsTrue)
			c.Assert(err, qt.ErrorMatches, "could not create Vulkan instance: .*")
		})
	}
}

func TestOpenFailureWrapsDriverError(t *testing.T) {
	c := qt.New(t)
	_, err := device.Open(&devicetest.Driver{FailCreate: true}, device.DefaultApplicationInfo)
	c.Assert(errors.Is(err, devicetest.ErrCreateInstance), qt.IsTrue)
}
