// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"sync/atomic"

	"github.com/devblok/vkboot/gfx"
)

// NewFramebufferExtent creates an extent slot holding the initial size.
func NewFramebufferExtent(width, height uint32) *FramebufferExtent {
	fe := &FramebufferExtent{}
	fe.Store(width, height)
	return fe
}

// FramebufferExtent is the last known client area size of the window.
// The window layer stores into it from its own dispatch path, the swapchain
// negotiator loads from it once per build. Both sides never block.
type FramebufferExtent struct {
	packed uint64
}

// Store records a new size.
func (fe *FramebufferExtent) Store(width, height uint32) {
	atomic.StoreUint64(&fe.packed, uint64(width)<<32|uint64(height))
}

// Load returns the last stored size. It may already be stale.
func (fe *FramebufferExtent) Load() gfx.Extent2D {
	packed := atomic.LoadUint64(&fe.packed)
	return gfx.Extent2D{
		Width:  uint32(packed >> 32),
		Height: uint32(packed),
	}
}
