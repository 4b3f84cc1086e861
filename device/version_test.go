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

func TestVersionDecoding(t *testing.T) {
	c := qt.New(t)

	v := device.MakeAPIVersion(1, 1, 3, 250)
	c.Assert(v.Variant(), qt.Equals, uint32(1))
	c.Assert(v.Major(), qt.Equals, uint32(1))
	c.Assert(v.Minor(), qt.Equals, uint32(3))
	c.Assert(v.Patch(), qt.Equals, uint32(250))
	c.Assert(v.String(), qt.Equals, "1.3.250")

	// VK_API_VERSION_1_0
	c.Assert(uint32(device.MakeVersion(1, 0, 0)), qt.Equals, uint32(1<<22))
	// VK_API_VERSION_1_3 with patch 204 as reported by Mesa
	c.Assert(uint32(device.MakeVersion(1, 3, 204)), qt.Equals, uint32(0x004030CC))
}

func TestParseVersion(t *testing.T) {
	c := qt.New(t)

	v, err := device.ParseVersion("1.2")
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, device.MakeVersion(1, 2, 0))

	v, err = device.ParseVersion(" 1.3.275 ")
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, device.MakeVersion(1, 3, 275))

	for _, bad := range []string{"", "1", "1.2.3.4", "a.b", "1.-2", "1.1024", "128.0"} {
		_, err := device.ParseVersion(bad)
		c.Check(err, qt.Not(qt.IsNil), qt.Commentf("%q", bad))
	}
}
