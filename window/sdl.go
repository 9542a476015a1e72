// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"unsafe"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func newSDLWindow(cfg core.WindowConfiguration, extent *core.FramebufferExtent, log logrus.FieldLogger) (Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	extent.Store(cfg.Width, cfg.Height)
	log.WithField("size", extent.Load()).Debug("window created")

	return &sdlWindow{
		window: window,
		extent: extent,
		log:    log,
	}, nil
}

// sdlWindow is a Window backed by SDL2
type sdlWindow struct {
	window *sdl.Window
	extent *core.FramebufferExtent
	log    logrus.FieldLogger
}

// InstanceExtensions implements interface
func (s *sdlWindow) InstanceExtensions() []string {
	return s.window.VulkanGetInstanceExtensions()
}

// ProcAddr implements interface
func (s *sdlWindow) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// CreateSurface implements interface
func (s *sdlWindow) CreateSurface(instance gfx.Instance) (uintptr, error) {
	surface, err := s.window.VulkanCreateSurface(instance)
	if err != nil {
		return 0, errors.New("sdl.VulkanCreateSurface(): " + err.Error())
	}
	return uintptr(surface), nil
}

// Poll implements interface
func (s *sdlWindow) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		case *sdl.WindowEvent:
			if et.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.extent.Store(uint32(et.Data1), uint32(et.Data2))
				s.log.WithField("size", s.extent.Load()).Debug("window resized")
			}
		}
	}
	return true
}

// Destroy implements interface
func (s *sdlWindow) Destroy() {
	if s.window == nil {
		return
	}
	if err := s.window.Destroy(); err != nil {
		s.log.WithError(err).Warn("sdl window destroy failed")
	}
	s.window = nil
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
