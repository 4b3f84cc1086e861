// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// QueueFlags is the raw capability bitmask of a queue family.
type QueueFlags uint32

// Queue capability bits as defined by VkQueueFlagBits
const (
	QueueGraphicsBit      QueueFlags = 0x00000001
	QueueComputeBit       QueueFlags = 0x00000002
	QueueTransferBit      QueueFlags = 0x00000004
	QueueSparseBindingBit QueueFlags = 0x00000008
	QueueProtectedBit     QueueFlags = 0x00000010
	// Provisional, from the video queue extensions
	QueueVideoDecodeBit QueueFlags = 0x00000020
	QueueVideoEncodeBit QueueFlags = 0x00000040
)

// Capability is a named operation category a queue family supports.
type Capability string

// Queue capabilities in decoding order
const (
	CapabilityGraphics      Capability = "Graphics"
	CapabilityCompute       Capability = "Compute"
	CapabilityTransfer      Capability = "Transfer"
	CapabilitySparseBinding Capability = "SparseBinding"
	CapabilityProtected     Capability = "Protected"
	CapabilityVideoDecode   Capability = "VideoDecode"
	CapabilityVideoEncode   Capability = "VideoEncode"
)

type capabilityBit struct {
	bit        QueueFlags
	capability Capability
	flagName   string
	extended   bool
}

var capabilityBits = [...]capabilityBit{
	{QueueGraphicsBit, CapabilityGraphics, "VK_QUEUE_GRAPHICS_BIT", false},
	{QueueComputeBit, CapabilityCompute, "VK_QUEUE_COMPUTE_BIT", false},
	{QueueTransferBit, CapabilityTransfer, "VK_QUEUE_TRANSFER_BIT", false},
	{QueueSparseBindingBit, CapabilitySparseBinding, "VK_QUEUE_SPARSE_BINDING_BIT", false},
	{QueueProtectedBit, CapabilityProtected, "VK_QUEUE_PROTECTED_BIT", false},
	{QueueVideoDecodeBit, CapabilityVideoDecode, "VK_QUEUE_VIDEO_DECODE_BIT_KHR", true},
	{QueueVideoEncodeBit, CapabilityVideoEncode, "VK_QUEUE_VIDEO_ENCODE_BIT_KHR", true},
}

// DecodeQueueFlags returns the capabilities whose bits are set in flags.
// Video capabilities are only reported when extended is true. Bits this
// build does not know are ignored.
func DecodeQueueFlags(flags QueueFlags, extended bool) []Capability {
	caps := []Capability{}
	for _, cb := range capabilityBits {
		if cb.extended && !extended {
			continue
		}
		if flags&cb.bit != 0 {
			caps = append(caps, cb.capability)
		}
	}
	return caps
}

func (c Capability) String() string {
	return string(c)
}

// FlagName returns the Vulkan enumerant of the capability bit
func (c Capability) FlagName() string {
	for _, cb := range capabilityBits {
		if cb.capability == c {
			return cb.flagName
		}
	}
	return string(c)
}

// Has reports whether every bit of other is set.
func (f QueueFlags) Has(other QueueFlags) bool {
	return f&other == other
}
