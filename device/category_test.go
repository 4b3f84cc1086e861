// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/koruinfo/device"
)

func TestDecodeDeviceType(t *testing.T) {
	c := qt.New(t)
	known := map[uint32]device.DeviceType{
		0: device.DeviceTypeOther,
		1: device.DeviceTypeIntegratedGPU,
		2: device.DeviceTypeDiscreteGPU,
		3: device.DeviceTypeVirtualGPU,
		4: device.DeviceTypeCPU,
	}
	for raw, want := range known {
		got := device.DecodeDeviceType(raw)
		c.Check(got, qt.Equals, want)
		c.Check(got, qt.Not(qt.Equals), device.DeviceTypeUnknown)
	}
	for _, raw := range []uint32{5, 6, 1000, 0x7fffffff} {
		c.Check(device.DecodeDeviceType(raw), qt.Equals, device.DeviceTypeUnknown, qt.Commentf("raw %d", raw))
	}
}

func TestDeviceTypeText(t *testing.T) {
	c := qt.New(t)
	c.Assert(device.DeviceTypeDiscreteGPU.String(), qt.Equals, "Discrete GPU")
	c.Assert(device.DeviceType(42).String(), qt.Equals, "Unknown")

	text, err := device.DeviceTypeIntegratedGPU.MarshalText()
	c.Assert(err, qt.IsNil)
	c.Assert(string(text), qt.Equals, "Integrated GPU")
}
