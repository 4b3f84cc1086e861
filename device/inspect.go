// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// MaxDeviceNameLength is the longest device name kept in a Report, in bytes.
// It matches VK_MAX_PHYSICAL_DEVICE_NAME_SIZE minus the terminator.
const MaxDeviceNameLength = 255

// Report describes one physical device. It holds no driver handles.
type Report struct {
	Index         int                 `json:"index" yaml:"index"`
	Name          string              `json:"name" yaml:"name"`
	Type          DeviceType          `json:"type" yaml:"type"`
	APIVersion    Version             `json:"apiVersion" yaml:"apiVersion"`
	APIVariant    uint32              `json:"apiVariant" yaml:"apiVariant"`
	DriverVersion uint32              `json:"driverVersion" yaml:"driverVersion"`
	VendorID      uint32              `json:"vendorID" yaml:"vendorID"`
	VendorName    string              `json:"vendorName,omitempty" yaml:"vendorName,omitempty"`
	DeviceID      uint32              `json:"deviceID" yaml:"deviceID"`
	Limits        Limits              `json:"limits" yaml:"limits"`
	Features      Features            `json:"-" yaml:"-"`
	QueueFamilies []QueueFamilyReport `json:"queueFamilies" yaml:"queueFamilies"`
}

// QueueFamilyReport describes one queue family of a device.
type QueueFamilyReport struct {
	Index        int          `json:"index" yaml:"index"`
	QueueCount   uint32       `json:"queueCount" yaml:"queueCount"`
	Flags        QueueFlags   `json:"flags" yaml:"flags"`
	Capabilities []Capability `json:"capabilities" yaml:"capabilities,flow"`
}

// Supports reports whether the device has the named feature.
func (r Report) Supports(feature string) bool {
	return r.Features[feature]
}

// HasVendorName reports whether the vendor id was found in the registry.
func (r Report) HasVendorName() bool {
	return r.VendorName != ""
}

// InspectorOptions tune what an Inspector reports
type InspectorOptions struct {
	// ExtendedCapabilities enables decoding of the provisional video
	// queue capabilities.
	ExtendedCapabilities bool
}

// Inspector builds Reports from physical device handles.
type Inspector struct {
	driver  Driver
	options InspectorOptions
}

// NewInspector creates an Inspector querying the given driver
func NewInspector(driver Driver, opts InspectorOptions) *Inspector {
	return &Inspector{
		driver:  driver,
		options: opts,
	}
}

// Inspect queries properties, features and queue families of the device.
// These queries cannot fail for a handle obtained from an open session.
func (i *Inspector) Inspect(index int, device PhysicalDevice) Report {
	props := i.driver.GetPhysicalDeviceProperties(device)

	report := Report{
		Index:         index,
		Name:          boundedName(props.DeviceName),
		Type:          DecodeDeviceType(props.DeviceType),
		APIVersion:    props.APIVersion,
		APIVariant:    props.APIVersion.Variant(),
		DriverVersion: props.DriverVersion,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		Limits:        props.Limits,
	}
	if name, ok := LookupVendor(props.VendorID); ok {
		report.VendorName = name
	}

	report.Features = i.driver.GetPhysicalDeviceFeatures(device)

	families := queueFamilies(i.driver, device)
	report.QueueFamilies = make([]QueueFamilyReport, len(families))
	for j, family := range families {
		report.QueueFamilies[j] = QueueFamilyReport{
			Index:        j,
			QueueCount:   family.QueueCount,
			Flags:        family.QueueFlags,
			Capabilities: DecodeQueueFlags(family.QueueFlags, i.options.ExtendedCapabilities),
		}
	}

	log.WithFields(log.Fields{
		"index":         index,
		"name":          report.Name,
		"type":          report.Type,
		"queueFamilies": len(report.QueueFamilies),
	}).Debug("inspected physical device")
	return report
}

// boundedName cuts name to MaxDeviceNameLength bytes without splitting a rune.
func boundedName(name string) string {
	if len(name) <= MaxDeviceNameLength {
		return name
	}
	cut := MaxDeviceNameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
