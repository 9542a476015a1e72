// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
)

// NewSurface binds the window to the backend. It is attempted exactly once.
func NewSurface(backend *Backend, target gfx.SurfaceTarget) (*Surface, error) {
	if target == nil {
		return nil, errors.Wrap(ErrSurfaceCreationFailed, "no window")
	}
	surface, err := backend.Driver().CreateSurface(backend.Instance(), target)
	if err != nil {
		return nil, errors.Wrap(ErrSurfaceCreationFailed, err.Error())
	}
	return &Surface{
		backend: backend,
		surface: surface,
	}, nil
}

// Surface is a window surface. It must outlive every swapchain built on it
// and be destroyed before the backend.
type Surface struct {
	backend *Backend
	surface gfx.Surface
}

// Handle returns the surface handle.
func (s *Surface) Handle() gfx.Surface {
	return s.surface
}

// SupportsPresent reports whether the queue family of the selected device
// can present to this surface.
func (s *Surface) SupportsPresent(selection DeviceSelection) (bool, error) {
	family, ok := selection.GraphicsFamily.Get()
	if !ok {
		return false, nil
	}
	return s.backend.Driver().SurfaceSupport(selection.PhysicalDevice, family, s.surface)
}

// Destroy implements interface
func (s *Surface) Destroy() {
	if s.surface == nil {
		return
	}
	s.backend.Driver().DestroySurface(s.backend.Instance(), s.surface)
	s.surface = nil
}
