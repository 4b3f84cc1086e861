// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package devicetest provides an in-memory device.Driver for tests.
package devicetest

import (
	"errors"
	"sync"

	"github.com/devblok/koruinfo/device"
)

// Failures injected by Driver
var (
	ErrCreateInstance = errors.New("VK_ERROR_INCOMPATIBLE_DRIVER")
	ErrCount          = errors.New("VK_ERROR_INITIALIZATION_FAILED")
	ErrFill           = errors.New("VK_ERROR_OUT_OF_HOST_MEMORY")
)

// Device is a simulated physical device.
type Device struct {
	Properties    device.Properties
	Features      device.Features
	QueueFamilies []device.QueueFamilyProperties

	// PanicOnInspect makes the property query panic, simulating a
	// driver crash during inspection.
	PanicOnInspect bool
}

type handle struct {
	index int
}

type instance struct {
	id int
}

// Driver implements device.Driver over a fixed list of Devices and
// counts every call it receives. It is safe for concurrent use.
type Driver struct {
	Devices []Device

	FailCreate bool
	FailCount  bool
	FailFill   bool

	// FillLimit, when positive, caps how many devices the fill call
	// writes, as if devices disappeared between the two calls.
	FillLimit int

	mutex           sync.Mutex
	created         int
	destroyed       int
	countCalls      int
	fillCalls       int
	inspected       int
	lastApplication device.ApplicationInfo
	live            map[int]bool
}

// CreateInstance implements device.Driver
func (d *Driver) CreateInstance(info device.ApplicationInfo) (device.Instance, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.lastApplication = info
	if d.FailCreate {
		return nil, ErrCreateInstance
	}
	d.created++
	if d.live == nil {
		d.live = map[int]bool{}
	}
	d.live[d.created] = true
	return &instance{id: d.created}, nil
}

// DestroyInstance implements device.Driver
func (d *Driver) DestroyInstance(inst device.Instance) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.destroyed++
	if i, ok := inst.(*instance); ok {
		delete(d.live, i.id)
	}
}

// EnumeratePhysicalDevices implements device.Driver
func (d *Driver) EnumeratePhysicalDevices(inst device.Instance, count *uint32, devices []device.PhysicalDevice) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if i, ok := inst.(*instance); !ok || !d.live[i.id] {
		return errors.New("VK_ERROR_DEVICE_LOST")
	}

	if devices == nil {
		d.countCalls++
		if d.FailCount {
			return ErrCount
		}
		*count = uint32(len(d.Devices))
		return nil
	}

	d.fillCalls++
	if d.FailFill {
		return ErrFill
	}
	available := len(d.Devices)
	if d.FillLimit > 0 && d.FillLimit < available {
		available = d.FillLimit
	}
	written := int(*count)
	if written > len(devices) {
		written = len(devices)
	}
	if written > available {
		written = available
	}
	for i := 0; i < written; i++ {
		devices[i] = &handle{index: i}
	}
	*count = uint32(written)
	return nil
}

// GetPhysicalDeviceProperties implements device.Driver
func (d *Driver) GetPhysicalDeviceProperties(pd device.PhysicalDevice) device.Properties {
	dev := d.lookup(pd)
	d.mutex.Lock()
	d.inspected++
	d.mutex.Unlock()
	if dev.PanicOnInspect {
		panic("devicetest: simulated driver crash")
	}
	return dev.Properties
}

// GetPhysicalDeviceFeatures implements device.Driver
func (d *Driver) GetPhysicalDeviceFeatures(pd device.PhysicalDevice) device.Features {
	features := device.Features{}
	for name, supported := range d.lookup(pd).Features {
		features[name] = supported
	}
	return features
}

// GetPhysicalDeviceQueueFamilyProperties implements device.Driver
func (d *Driver) GetPhysicalDeviceQueueFamilyProperties(pd device.PhysicalDevice, count *uint32, families []device.QueueFamilyProperties) {
	dev := d.lookup(pd)
	if families == nil {
		*count = uint32(len(dev.QueueFamilies))
		return
	}
	n := int(*count)
	if n > len(families) {
		n = len(families)
	}
	*count = uint32(copy(families[:n], dev.QueueFamilies))
}

func (d *Driver) lookup(pd device.PhysicalDevice) Device {
	h, ok := pd.(*handle)
	if !ok || h.index >= len(d.Devices) {
		panic("devicetest: invalid physical device handle")
	}
	return d.Devices[h.index]
}

// Created returns how many instances were created
func (d *Driver) Created() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.created
}

// Destroyed returns how many times DestroyInstance was called
func (d *Driver) Destroyed() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.destroyed
}

// CountCalls returns how many counting enumeration calls were made
func (d *Driver) CountCalls() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.countCalls
}

// FillCalls returns how many filling enumeration calls were made
func (d *Driver) FillCalls() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.fillCalls
}

// Inspected returns how many property queries were made
func (d *Driver) Inspected() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.inspected
}

// LastApplication returns the identity passed to the last CreateInstance
func (d *Driver) LastApplication() device.ApplicationInfo {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.lastApplication
}

// GPU returns a plausible discrete GPU with one graphics and one transfer
// queue family.
func GPU(name string, vendorID uint32) Device {
	return Device{
		Properties: device.Properties{
			APIVersion:    device.MakeVersion(1, 3, 250),
			DriverVersion: 0x86454000,
			VendorID:      vendorID,
			DeviceID:      0x2684,
			DeviceType:    2,
			DeviceName:    name,
			Limits: device.Limits{
				MaxImageDimension1D:       32768,
				MaxImageDimension2D:       32768,
				MaxImageDimension3D:       16384,
				MaxImageDimensionCube:     32768,
				MaxTexelBufferElements:    134217728,
				SparseAddressSpaceSize:    1 << 40,
				MaxGeometryOutputVertices: 1024,
				MaxViewportDimensions:     [2]uint32{32768, 32768},
				MaxFramebufferWidth:       32768,
				MaxFramebufferHeight:      32768,
				PointSizeRange:            [2]float32{1, 2047.9375},
				PointSizeGranularity:      0.0625,
				LineWidthRange:            [2]float32{1, 64},
				LineWidthGranularity:      0.0625,
			},
		},
		Features: device.Features{
			"geometryShader":     true,
			"tessellationShader": true,
			"sparseBinding":      true,
			"shaderFloat64":      false,
		},
		QueueFamilies: []device.QueueFamilyProperties{
			{QueueFlags: device.QueueGraphicsBit | device.QueueComputeBit | device.QueueTransferBit | device.QueueSparseBindingBit, QueueCount: 16},
			{QueueFlags: device.QueueTransferBit | device.QueueSparseBindingBit, QueueCount: 2},
			{QueueFlags: device.QueueTransferBit | device.QueueVideoDecodeBit, QueueCount: 1},
		},
	}
}
