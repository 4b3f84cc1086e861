// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device inventories the physical devices exposed by a Vulkan driver
// stack. It owns the connection to the driver stack, enumerates physical
// devices with the count-then-fill protocol and turns each device into a
// Report that carries no reference back to driver-managed state.
package device

// Instance is an open connection to the driver stack. It is opaque to this
// package and only ever handed back to the Driver that created it.
type Instance interface{}

// PhysicalDevice is a driver-issued handle of a single physical device.
// It is valid only while the Instance it was enumerated from is open.
type PhysicalDevice interface{}

// Driver describes the driver stack beneath the application.
//
// The enumeration calls follow the Vulkan convention: when the output slice
// is nil, count receives the number of available entries; otherwise at most
// *count entries are written and count is updated to the number written.
type Driver interface {
	// CreateInstance opens a connection using the given application identity.
	CreateInstance(info ApplicationInfo) (Instance, error)

	// DestroyInstance releases every resource held by the instance.
	DestroyInstance(instance Instance)

	// EnumeratePhysicalDevices lists the physical devices of the instance.
	EnumeratePhysicalDevices(instance Instance, count *uint32, devices []PhysicalDevice) error

	// GetPhysicalDeviceProperties returns static properties of the device.
	GetPhysicalDeviceProperties(device PhysicalDevice) Properties

	// GetPhysicalDeviceFeatures returns the feature flags of the device.
	GetPhysicalDeviceFeatures(device PhysicalDevice) Features

	// GetPhysicalDeviceQueueFamilyProperties lists the queue families of the device.
	GetPhysicalDeviceQueueFamilyProperties(device PhysicalDevice, count *uint32, families []QueueFamilyProperties)
}

// ApplicationInfo identifies the application to the driver stack.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version
}

// DefaultApplicationInfo is used when nothing else is configured
var DefaultApplicationInfo = ApplicationInfo{
	ApplicationName:    "koruinfo",
	ApplicationVersion: MakeVersion(1, 0, 0),
	EngineName:         "No Engine",
	EngineVersion:      MakeVersion(1, 0, 0),
	APIVersion:         MakeAPIVersion(0, 1, 0, 0),
}

// Properties are the static properties of a physical device as reported
// by the driver stack.
type Properties struct {
	APIVersion    Version
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceType    uint32
	DeviceName    string
	Limits        Limits
}

// Limits is the subset of device limits carried in a Report.
type Limits struct {
	MaxImageDimension1D       uint32     `json:"maxImageDimension1D" yaml:"maxImageDimension1D"`
	MaxImageDimension2D       uint32     `json:"maxImageDimension2D" yaml:"maxImageDimension2D"`
	MaxImageDimension3D       uint32     `json:"maxImageDimension3D" yaml:"maxImageDimension3D"`
	MaxImageDimensionCube     uint32     `json:"maxImageDimensionCube" yaml:"maxImageDimensionCube"`
	MaxTexelBufferElements    uint32     `json:"maxTexelBufferElements" yaml:"maxTexelBufferElements"`
	SparseAddressSpaceSize    uint64     `json:"sparseAddressSpaceSize" yaml:"sparseAddressSpaceSize"`
	MaxGeometryOutputVertices uint32     `json:"maxGeometryOutputVertices" yaml:"maxGeometryOutputVertices"`
	MaxViewportDimensions     [2]uint32  `json:"maxViewportDimensions" yaml:"maxViewportDimensions,flow"`
	MaxFramebufferWidth       uint32     `json:"maxFramebufferWidth" yaml:"maxFramebufferWidth"`
	MaxFramebufferHeight      uint32     `json:"maxFramebufferHeight" yaml:"maxFramebufferHeight"`
	PointSizeRange            [2]float32 `json:"pointSizeRange" yaml:"pointSizeRange,flow"`
	PointSizeGranularity      float32    `json:"pointSizeGranularity" yaml:"pointSizeGranularity"`
	LineWidthRange            [2]float32 `json:"lineWidthRange" yaml:"lineWidthRange,flow"`
	LineWidthGranularity      float32    `json:"lineWidthGranularity" yaml:"lineWidthGranularity"`
}

// Features maps Vulkan feature names (robustBufferAccess, geometryShader, ...)
// to whether the device supports them. Any feature enabled at logical device
// creation must be present here first.
type Features map[string]bool

// QueueFamilyProperties describes one queue family as reported by the driver.
type QueueFamilyProperties struct {
	QueueFlags QueueFlags
	QueueCount uint32
}
