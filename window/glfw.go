// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"unsafe"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func newGLFWWindow(cfg core.WindowConfiguration, extent *core.FramebufferExtent, log logrus.FieldLogger) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.New("glfw.Init(): " + err.Error())
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("glfw.VulkanSupported(): no Vulkan loader found")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.New("glfw.CreateWindow(): " + err.Error())
	}

	w := &glfwWindow{
		window: window,
		extent: extent,
		log:    log,
	}

	width, height := window.GetFramebufferSize()
	extent.Store(uint32(width), uint32(height))
	window.SetFramebufferSizeCallback(w.framebufferResized)
	window.SetKeyCallback(w.keyPressed)
	log.WithField("size", extent.Load()).Debug("window created")

	return w, nil
}

// glfwWindow is a Window backed by GLFW
type glfwWindow struct {
	window *glfw.Window
	extent *core.FramebufferExtent
	log    logrus.FieldLogger
}

func (g *glfwWindow) framebufferResized(_ *glfw.Window, width, height int) {
	g.extent.Store(uint32(width), uint32(height))
	g.log.WithField("size", g.extent.Load()).Debug("framebuffer resized")
}

func (g *glfwWindow) keyPressed(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// InstanceExtensions implements interface
func (g *glfwWindow) InstanceExtensions() []string {
	return g.window.GetRequiredInstanceExtensions()
}

// ProcAddr implements interface
func (g *glfwWindow) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// CreateSurface implements interface
func (g *glfwWindow) CreateSurface(instance gfx.Instance) (uintptr, error) {
	surface, err := g.window.CreateWindowSurface(instance, nil)
	if err != nil {
		return 0, errors.New("glfw.CreateWindowSurface(): " + err.Error())
	}
	return surface, nil
}

// Poll implements interface
func (g *glfwWindow) Poll() bool {
	glfw.PollEvents()
	return !g.window.ShouldClose()
}

// Destroy implements interface
func (g *glfwWindow) Destroy() {
	if g.window == nil {
		return
	}
	g.window.Destroy()
	g.window = nil
	glfw.Terminate()
}
