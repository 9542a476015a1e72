// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core establishes a presentation surface on a graphics backend:
// it selects a physical device, creates the logical device and its queue,
// binds the window surface and negotiates the swapchain. It never draws.
package core

// Destroyable is anything holding backend objects that must be
// released explicitly.
type Destroyable interface {

	// Destroy releases the held objects. Calling it more than once is
	// a no-op.
	Destroy()
}
