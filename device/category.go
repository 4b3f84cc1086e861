// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// DeviceType is the category of a physical device
type DeviceType int

// Known device categories. DeviceTypeUnknown stands for any value the
// driver reports that this build does not know about.
const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
	DeviceTypeUnknown
)

// Raw VkPhysicalDeviceType values
const (
	physicalDeviceTypeOther         = 0
	physicalDeviceTypeIntegratedGPU = 1
	physicalDeviceTypeDiscreteGPU   = 2
	physicalDeviceTypeVirtualGPU    = 3
	physicalDeviceTypeCPU           = 4
)

// DecodeDeviceType maps a raw driver value to a DeviceType.
func DecodeDeviceType(raw uint32) DeviceType {
	switch raw {
	case physicalDeviceTypeOther:
		return DeviceTypeOther
	case physicalDeviceTypeIntegratedGPU:
		return DeviceTypeIntegratedGPU
	case physicalDeviceTypeDiscreteGPU:
		return DeviceTypeDiscreteGPU
	case physicalDeviceTypeVirtualGPU:
		return DeviceTypeVirtualGPU
	case physicalDeviceTypeCPU:
		return DeviceTypeCPU
	default:
		return DeviceTypeUnknown
	}
}

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeOther:
		return "Other"
	case DeviceTypeIntegratedGPU:
		return "Integrated GPU"
	case DeviceTypeDiscreteGPU:
		return "Discrete GPU"
	case DeviceTypeVirtualGPU:
		return "Virtual GPU"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (t DeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
