// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeDriver is a gfx.Driver recording every call it receives. Resources are
// recorded as "acquire:<name>" and "release:<name>" events.
type fakeDriver struct {
	devices        [][]gfx.QueueFamily
	capabilities   gfx.SurfaceCapabilities
	formats        []gfx.SurfaceFormat
	modes          []gfx.PresentMode
	images         int
	presentSupport bool
	fail           map[string]error

	calls  []string
	events []string

	instanceInfo  gfx.InstanceCreateInfo
	deviceInfo    gfx.DeviceCreateInfo
	swapchainInfo gfx.SwapchainCreateInfo
	physical      gfx.PhysicalDevice
	debugFn       gfx.DebugFunc
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		devices: [][]gfx.QueueFamily{
			{{Index: 0, Capabilities: gfx.QueueGraphics | gfx.QueueCompute | gfx.QueueTransfer, QueueCount: 16}},
		},
		capabilities: gfx.SurfaceCapabilities{
			MinImageCount:           2,
			MaxImageCount:           8,
			CurrentExtent:           gfx.Extent2D{Width: 800, Height: 600},
			MinImageExtent:          gfx.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:          gfx.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform:        gfx.SurfaceTransformIdentity,
			SupportedCompositeAlpha: gfx.CompositeAlphaOpaque,
		},
		formats: []gfx.SurfaceFormat{
			{Format: gfx.FormatB8G8R8A8Unorm, ColorSpace: gfx.ColorSpaceSrgbNonlinear},
			core.PreferredSurfaceFormat,
		},
		modes:          []gfx.PresentMode{gfx.PresentModeFifo, gfx.PresentModeMailbox},
		images:         3,
		presentSupport: true,
		fail:           map[string]error{},
	}
}

func (d *fakeDriver) call(name string) error {
	d.calls = append(d.calls, name)
	return d.fail[name]
}

func (d *fakeDriver) called(name string) bool {
	for _, c := range d.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (d *fakeDriver) acquire(name string) {
	d.events = append(d.events, "acquire:"+name)
}

func (d *fakeDriver) release(name string) {
	d.events = append(d.events, "release:"+name)
}

func (d *fakeDriver) CreateInstance(info gfx.InstanceCreateInfo) (gfx.Instance, error) {
	d.instanceInfo = info
	if err := d.call("CreateInstance"); err != nil {
		return nil, err
	}
	d.acquire("instance")
	return "instance", nil
}

func (d *fakeDriver) DestroyInstance(instance gfx.Instance) {
	d.call("DestroyInstance")
	d.release("instance")
}

func (d *fakeDriver) CreateDebugSink(instance gfx.Instance, severities gfx.DebugSeverity, fn gfx.DebugFunc) (gfx.DebugSink, error) {
	if err := d.call("CreateDebugSink"); err != nil {
		return nil, err
	}
	d.debugFn = fn
	d.acquire("debug sink")
	return "debug sink", nil
}

func (d *fakeDriver) DestroyDebugSink(instance gfx.Instance, sink gfx.DebugSink) {
	d.call("DestroyDebugSink")
	d.debugFn = nil
	d.release("debug sink")
}

func (d *fakeDriver) EnumeratePhysicalDevices(instance gfx.Instance) ([]gfx.PhysicalDevice, error) {
	if err := d.call("EnumeratePhysicalDevices"); err != nil {
		return nil, err
	}
	devices := make([]gfx.PhysicalDevice, len(d.devices))
	for i := range devices {
		devices[i] = i
	}
	return devices, nil
}

func (d *fakeDriver) DeviceInfo(device gfx.PhysicalDevice) gfx.DeviceInfo {
	d.call("DeviceInfo")
	idx := device.(int)
	return gfx.DeviceInfo{ID: idx, Name: "fake gpu", Type: gfx.DeviceTypeDiscreteGPU}
}

func (d *fakeDriver) QueueFamilies(device gfx.PhysicalDevice) []gfx.QueueFamily {
	d.call("QueueFamilies")
	return d.devices[device.(int)]
}

func (d *fakeDriver) SurfaceSupport(device gfx.PhysicalDevice, family uint32, surface gfx.Surface) (bool, error) {
	if err := d.call("SurfaceSupport"); err != nil {
		return false, err
	}
	return d.presentSupport, nil
}

func (d *fakeDriver) CreateDevice(physical gfx.PhysicalDevice, info gfx.DeviceCreateInfo) (gfx.Device, error) {
	d.physical = physical
	d.deviceInfo = info
	if err := d.call("CreateDevice"); err != nil {
		return nil, err
	}
	d.acquire("device")
	return "device", nil
}

func (d *fakeDriver) DeviceQueue(device gfx.Device, family, index uint32) gfx.Queue {
	d.call("DeviceQueue")
	return "queue"
}

func (d *fakeDriver) DestroyDevice(device gfx.Device) {
	d.call("DestroyDevice")
	d.release("device")
}

func (d *fakeDriver) CreateSurface(instance gfx.Instance, target gfx.SurfaceTarget) (gfx.Surface, error) {
	if err := d.call("CreateSurface"); err != nil {
		return nil, err
	}
	if _, err := target.CreateSurface(instance); err != nil {
		return nil, err
	}
	d.acquire("surface")
	return "surface", nil
}

func (d *fakeDriver) DestroySurface(instance gfx.Instance, surface gfx.Surface) {
	d.call("DestroySurface")
	d.release("surface")
}

func (d *fakeDriver) SurfaceCapabilities(device gfx.PhysicalDevice, surface gfx.Surface) (gfx.SurfaceCapabilities, error) {
	if err := d.call("SurfaceCapabilities"); err != nil {
		return gfx.SurfaceCapabilities{}, err
	}
	return d.capabilities, nil
}

func (d *fakeDriver) SurfaceFormats(device gfx.PhysicalDevice, surface gfx.Surface) ([]gfx.SurfaceFormat, error) {
	if err := d.call("SurfaceFormats"); err != nil {
		return nil, err
	}
	return d.formats, nil
}

func (d *fakeDriver) SurfacePresentModes(device gfx.PhysicalDevice, surface gfx.Surface) ([]gfx.PresentMode, error) {
	if err := d.call("SurfacePresentModes"); err != nil {
		return nil, err
	}
	return d.modes, nil
}

func (d *fakeDriver) CreateSwapchain(device gfx.Device, info gfx.SwapchainCreateInfo) (gfx.Swapchain, error) {
	d.swapchainInfo = info
	if err := d.call("CreateSwapchain"); err != nil {
		return nil, err
	}
	d.acquire("swapchain")
	return "swapchain", nil
}

func (d *fakeDriver) SwapchainImages(device gfx.Device, swapchain gfx.Swapchain) ([]gfx.Image, error) {
	if err := d.call("SwapchainImages"); err != nil {
		return nil, err
	}
	images := make([]gfx.Image, d.images)
	for i := range images {
		images[i] = i
	}
	return images, nil
}

func (d *fakeDriver) DestroySwapchain(device gfx.Device, swapchain gfx.Swapchain) {
	d.call("DestroySwapchain")
	d.release("swapchain")
}

// fakeWindow is a surface target that always succeeds unless err is set.
type fakeWindow struct {
	err error
}

func (w fakeWindow) CreateSurface(instance gfx.Instance) (uintptr, error) {
	if w.err != nil {
		return 0, w.err
	}
	return 1, nil
}

var errFake = errors.New("VK_ERROR_INITIALIZATION_FAILED")

func nullLogger() (logrus.FieldLogger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func newBackend(d *fakeDriver, cfg core.InstanceConfiguration) *core.Backend {
	log, _ := nullLogger()
	backend, err := core.NewBackend(d, cfg, log)
	if err != nil {
		panic(err)
	}
	return backend
}
