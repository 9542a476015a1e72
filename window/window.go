// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window provides the native windows a surface can be bound to.
// Windows must be created and polled from the main OS thread.
package window

import (
	"sort"
	"unsafe"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Window is a native window with a Vulkan capable client area.
type Window interface {
	core.Destroyable
	gfx.SurfaceTarget

	// InstanceExtensions lists the instance extensions the window
	// system needs for surface creation.
	InstanceExtensions() []string

	// ProcAddr returns the vkGetInstanceProcAddr the window system
	// loaded, or nil.
	ProcAddr() unsafe.Pointer

	// Poll drains pending events. It returns false once the window
	// was asked to close.
	Poll() bool
}

type constructor func(cfg core.WindowConfiguration, extent *core.FramebufferExtent, log logrus.FieldLogger) (Window, error)

var backends = map[string]constructor{
	"sdl":  newSDLWindow,
	"glfw": newGLFWWindow,
}

// Backends lists the available window backends.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New opens a window with the configured backend. Framebuffer size changes
// are stored into extent.
func New(cfg core.WindowConfiguration, extent *core.FramebufferExtent, log logrus.FieldLogger) (Window, error) {
	create, ok := backends[cfg.Backend]
	if !ok {
		return nil, errors.Errorf("unknown window backend %q, available: %v", cfg.Backend, Backends())
	}
	if extent == nil {
		return nil, errors.New("window needs a framebuffer extent")
	}
	return create(cfg, extent, log.WithField("window", cfg.Backend))
}
