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

func TestDecodeQueueFlags(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name     string
		flags    device.QueueFlags
		extended bool
		want     []device.Capability
	}{{
		name: "empty",
		flags: 0,
		want: []device.Capability{},
	}, {
		name:  "graphics and compute",
		flags: device.QueueGraphicsBit | device.QueueComputeBit,
		want:  []device.Capability{device.CapabilityGraphics, device.CapabilityCompute},
	}, {
		name:  "order of bits does not matter",
		flags: device.QueueComputeBit | device.QueueGraphicsBit,
		want:  []device.Capability{device.CapabilityGraphics, device.CapabilityCompute},
	}, {
		name:  "all core bits",
		flags: 0x1f,
		want: []device.Capability{
			device.CapabilityGraphics,
			device.CapabilityCompute,
			device.CapabilityTransfer,
			device.CapabilitySparseBinding,
			device.CapabilityProtected,
		},
	}, {
		name:  "video bits hidden by default",
		flags: device.QueueTransferBit | device.QueueVideoDecodeBit | device.QueueVideoEncodeBit,
		want:  []device.Capability{device.CapabilityTransfer},
	}, {
		name:     "video bits with extended capabilities",
		flags:    device.QueueTransferBit | device.QueueVideoDecodeBit | device.QueueVideoEncodeBit,
		extended: true,
		want: []device.Capability{
			device.CapabilityTransfer,
			device.CapabilityVideoDecode,
			device.CapabilityVideoEncode,
		},
	}, {
		name:     "unknown bits ignored",
		flags:    device.QueueComputeBit | 0x100 | 0x80000000,
		extended: true,
		want:     []device.Capability{device.CapabilityCompute},
	}}

	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			c.Assert(device.DecodeQueueFlags(test.flags, test.extended), qt.DeepEquals, test.want)
		})
	}
}

func TestCapabilityFlagName(t *testing.T) {
	c := qt.New(t)
	c.Assert(device.CapabilityGraphics.FlagName(), qt.Equals, "VK_QUEUE_GRAPHICS_BIT")
	c.Assert(device.CapabilitySparseBinding.FlagName(), qt.Equals, "VK_QUEUE_SPARSE_BINDING_BIT")
	c.Assert(device.CapabilityVideoEncode.FlagName(), qt.Equals, "VK_QUEUE_VIDEO_ENCODE_BIT_KHR")
	c.Assert(device.Capability("Mystery").FlagName(), qt.Equals, "Mystery")
}

func TestQueueFlagsHas(t *testing.T) {
	c := qt.New(t)
	flags := device.QueueGraphicsBit | device.QueueTransferBit
	c.Assert(flags.Has(device.QueueGraphicsBit), qt.IsTrue)
	c.Assert(flags.Has(device.QueueGraphicsBit|device.QueueComputeBit), qt.IsFalse)
}
