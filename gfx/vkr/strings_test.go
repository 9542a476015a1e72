// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSafeString(t *testing.T) {
	c := qt.New(t)

	c.Assert(safeString("VK_KHR_surface"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeString("VK_KHR_surface\x00"), qt.Equals, "VK_KHR_surface\x00")
	c.Assert(safeString(""), qt.Equals, "\x00")
}

func TestSafeStrings(t *testing.T) {
	c := qt.New(t)

	c.Assert(safeStrings(nil), qt.IsNil)
	c.Assert(safeStrings([]string{"a", "b\x00"}), qt.DeepEquals, []string{"a\x00", "b\x00"})
}
