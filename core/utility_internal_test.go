// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMergeNames(t *testing.T) {
	c := qt.New(t)

	c.Assert(mergeNames(), qt.IsNil)
	c.Assert(mergeNames(nil, []string{"", "\x00"}), qt.IsNil)
	c.Assert(mergeNames(
		[]string{"VK_KHR_surface", "VK_KHR_xcb_surface\x00"},
		[]string{"VK_KHR_xcb_surface", "VK_EXT_debug_report", "VK_KHR_surface\x00"},
	), qt.DeepEquals, []string{"VK_KHR_surface", "VK_KHR_xcb_surface", "VK_EXT_debug_report"})
}

func BenchmarkMergeNames(b *testing.B) {
	first := []string{"VK_KHR_surface\x00", "VK_KHR_xcb_surface\x00", "VK_KHR_xlib_surface\x00"}
	second := []string{"VK_KHR_surface", "VK_EXT_debug_report", "VK_KHR_get_physical_device_properties2"}
	for idx := 0; idx < b.N; idx++ {
		mergeNames(first, second)
	}
}
