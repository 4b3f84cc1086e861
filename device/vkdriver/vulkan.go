// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkdriver implements device.Driver on top of the system Vulkan loader.
package vkdriver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/devblok/koruinfo/device"
	vk "github.com/devblok/vulkan"
)

// Driver talks to the Vulkan loader found on the system.
// Only the instance level entry points are used.
type Driver struct{}

// New creates a Driver. The loader is resolved lazily by CreateInstance.
func New() *Driver {
	return &Driver{}
}

// CreateInstance implements device.Driver
func (Driver) CreateInstance(info device.ApplicationInfo) (device.Instance, error) {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return nil, errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
	}
	if err := vk.Init(); err != nil {
		return nil, errors.New("vk.Init(): " + err.Error())
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.ApplicationName),
		ApplicationVersion: uint32(info.ApplicationVersion),
		PEngineName:        safeString(info.EngineName),
		EngineVersion:      uint32(info.EngineVersion),
		ApiVersion:         uint32(info.APIVersion),
	}

	// no layers or extensions beyond the defaults
	instanceInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	vk.InitInstance(instance)
	return instance, nil
}

// DestroyInstance implements device.Driver
func (Driver) DestroyInstance(instance device.Instance) {
	if inst, ok := instance.(vk.Instance); ok {
		vk.DestroyInstance(inst, nil)
	}
}

// EnumeratePhysicalDevices implements device.Driver
func (Driver) EnumeratePhysicalDevices(instance device.Instance, count *uint32, devices []device.PhysicalDevice) error {
	inst, ok := instance.(vk.Instance)
	if !ok {
		return fmt.Errorf("not a Vulkan instance: %T", instance)
	}

	if devices == nil {
		if err := vk.Error(vk.EnumeratePhysicalDevices(inst, count, nil)); err != nil {
			return errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
		}
		return nil
	}

	availableDevices := make([]vk.PhysicalDevice, len(devices))
	if err := vk.Error(vk.EnumeratePhysicalDevices(inst, count, availableDevices)); err != nil {
		return errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}
	for i := uint32(0); i < *count && int(i) < len(devices); i++ {
		devices[i] = availableDevices[i]
	}
	return nil
}

// GetPhysicalDeviceProperties implements device.Driver
func (Driver) GetPhysicalDeviceProperties(pd device.PhysicalDevice) device.Properties {
	var physicalDeviceProperties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd.(vk.PhysicalDevice), &physicalDeviceProperties)
	physicalDeviceProperties.Deref()
	limits := physicalDeviceProperties.Limits
	limits.Deref()

	return device.Properties{
		APIVersion:    device.Version(physicalDeviceProperties.ApiVersion),
		DriverVersion: physicalDeviceProperties.DriverVersion,
		VendorID:      physicalDeviceProperties.VendorID,
		DeviceID:      physicalDeviceProperties.DeviceID,
		DeviceType:    uint32(physicalDeviceProperties.DeviceType),
		DeviceName:    vk.ToString(physicalDeviceProperties.DeviceName[:]),
		Limits: device.Limits{
			MaxImageDimension1D:       limits.MaxImageDimension1D,
			MaxImageDimension2D:       limits.MaxImageDimension2D,
			MaxImageDimension3D:       limits.MaxImageDimension3D,
			MaxImageDimensionCube:     limits.MaxImageDimensionCube,
			MaxTexelBufferElements:    limits.MaxTexelBufferElements,
			SparseAddressSpaceSize:    uint64(limits.SparseAddressSpaceSize),
			MaxGeometryOutputVertices: limits.MaxGeometryOutputVertices,
			MaxViewportDimensions:     limits.MaxViewportDimensions,
			MaxFramebufferWidth:       limits.MaxFramebufferWidth,
			MaxFramebufferHeight:      limits.MaxFramebufferHeight,
			PointSizeRange:            limits.PointSizeRange,
			PointSizeGranularity:      limits.PointSizeGranularity,
			LineWidthRange:            limits.LineWidthRange,
			LineWidthGranularity:      limits.LineWidthGranularity,
		},
	}
}

// GetPhysicalDeviceFeatures implements device.Driver
func (Driver) GetPhysicalDeviceFeatures(pd device.PhysicalDevice) device.Features {
	var physicalDeviceFeatures vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(pd.(vk.PhysicalDevice), &physicalDeviceFeatures)
	physicalDeviceFeatures.Deref()
	return featureMap(physicalDeviceFeatures)
}

// GetPhysicalDeviceQueueFamilyProperties implements device.Driver
func (Driver) GetPhysicalDeviceQueueFamilyProperties(pd device.PhysicalDevice, count *uint32, families []device.QueueFamilyProperties) {
	physicalDevice := pd.(vk.PhysicalDevice)
	if families == nil {
		vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, count, nil)
		return
	}

	queueFamilies := make([]vk.QueueFamilyProperties, len(families))
	vk.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, count, queueFamilies)
	for i := uint32(0); i < *count && int(i) < len(families); i++ {
		queueFamilies[i].Deref()
		families[i] = device.QueueFamilyProperties{
			QueueFlags: device.QueueFlags(queueFamilies[i].QueueFlags),
			QueueCount: queueFamilies[i].QueueCount,
		}
	}
}

var bool32Type = reflect.TypeOf(vk.Bool32(0))

// featureMap turns every Bool32 field of the features struct into an entry
// named the way the Vulkan specification spells it.
func featureMap(features vk.PhysicalDeviceFeatures) device.Features {
	out := device.Features{}
	value := reflect.ValueOf(features)
	for i := 0; i < value.NumField(); i++ {
		field := value.Type().Field(i)
		if field.PkgPath != "" || field.Type != bool32Type {
			continue
		}
		out[featureName(field.Name)] = vk.Bool32(value.Field(i).Uint()) == vk.True
	}
	return out
}

func featureName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToLower(r)) + field[size:]
}

func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
