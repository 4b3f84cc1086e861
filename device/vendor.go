// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// Vendor ties a vendor id to a human readable name.
type Vendor struct {
	ID   uint32
	Name string
}

// Khronos assigned vendor ids for implementations without a PCI vendor id
const (
	VendorIDVIV      = 0x10001
	VendorIDVSI      = 0x10002
	VendorIDKazan    = 0x10003
	VendorIDCodeplay = 0x10004
	VendorIDMesa     = 0x10005
	VendorIDPOCL     = 0x10006
	VendorIDMoltenVK = 0x10007
	VendorIDMobileye = 0x10008
)

var vendors = [...]Vendor{
	// PCI-SIG member ids
	{0x1002, "AMD"},
	{0x1010, "ImgTec"},
	{0x10DE, "Nvidia"},
	{0x13B5, "ARM"},
	{0x5143, "Qualcomm"},
	{0x8086, "Intel"},

	{VendorIDVIV, "VIV"},
	{VendorIDVSI, "VSI"},
	{VendorIDKazan, "KAZAN"},
	{VendorIDCodeplay, "CODEPLAY"},
	{VendorIDMesa, "MESA"},
	{VendorIDPOCL, "POCL"},
	{VendorIDMoltenVK, "MOLTENVK"},
	{VendorIDMobileye, "MOBILEYE"},
}

// LookupVendor returns the name of the first vendor matching id.
func LookupVendor(id uint32) (string, bool) {
	for _, v := range vendors {
		if v.ID == id {
			return v.Name, true
		}
	}
	return "", false
}

// Vendors returns a copy of the vendor table in lookup order
func Vendors() []Vendor {
	out := make([]Vendor, len(vendors))
	copy(out, vendors[:])
	return out
}
