// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx"
	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"
)

func selectDefault(c *qt.C, d *fakeDriver) (*core.Backend, core.DeviceSelection) {
	log, _ := nullLogger()
	backend := newBackend(d, core.InstanceConfiguration{})
	selection, err := core.SelectDevice(backend, gfx.QueueGraphics, log)
	c.Assert(err, qt.IsNil)
	return backend, selection
}

func TestNewLogicalDevice(t *testing.T) {
	c := qt.New(t)

	d := newFakeDriver()
	d.devices = [][]gfx.QueueFamily{
		families(gfx.QueueCompute),
		families(gfx.QueueGraphics, gfx.QueueTransfer, gfx.QueueGraphics|gfx.QueueCompute),
	}
	backend, selection := selectDefault(c, d)
	log, _ := nullLogger()

	device, err := core.NewLogicalDevice(backend, selection, []string{core.SwapchainExtension, core.SwapchainExtension + "\x00"}, log)
	c.Assert(err, qt.IsNil)
	c.Assert(d.physical, qt.Equals, gfx.PhysicalDevice(1))
	c.Assert(d.deviceInfo, qt.DeepEquals, gfx.DeviceCreateInfo{
		QueueFamily:     2,
		QueuePriorities: []float32{1.0},
		Extensions:      []string{core.SwapchainExtension},
	})
	c.Assert(device.QueueFamily(), qt.Equals, uint32(2))
	c.Assert(device.GraphicsQueue(), qt.Equals, gfx.Queue("queue"))
	c.Assert(device.PresentQueue(), qt.Equals, device.GraphicsQueue())

	device.Destroy()
	device.Destroy()
	c.Assert(device.Device(), qt.IsNil)
	c.Assert(d.events, qt.DeepEquals, []string{"acquire:instance", "acquire:device", "release:device"})
}

func TestNewLogicalDeviceFailure(t *testing.T) {
	c := qt.New(t)

	d := newFakeDriver()
	d.fail["CreateDevice"] = errFake
	backend, selection := selectDefault(c, d)
	log, _ := nullLogger()

	_, err := core.NewLogicalDevice(backend, selection, nil, log)
	c.Assert(errors.Is(err, core.ErrDeviceCreationFailed), qt.Equals, true)
	c.Assert(d.called("DeviceQueue"), qt.Equals, false)
}

func TestNewLogicalDeviceUnresolvedSelection(t *testing.T) {
	c := qt.New(t)

	d := newFakeDriver()
	backend := newBackend(d, core.InstanceConfiguration{})
	log, _ := nullLogger()

	_, err := core.NewLogicalDevice(backend, core.DeviceSelection{}, nil, log)
	c.Assert(errors.Is(err, core.ErrNoSuitableDevice), qt.Equals, true)
	c.Assert(d.called("CreateDevice"), qt.Equals, false)
}

func TestSurface(t *testing.T) {
	c := qt.New(t)

	d := newFakeDriver()
	backend, selection := selectDefault(c, d)

	surface, err := core.NewSurface(backend, fakeWindow{})
	c.Assert(err, qt.IsNil)
	c.Assert(surface.Handle(), qt.Equals, gfx.Surface("surface"))

	supported, err := surface.SupportsPresent(selection)
	c.Assert(err, qt.IsNil)
	c.Assert(supported, qt.Equals, true)

	d.presentSupport = false
	supported, err = surface.SupportsPresent(selection)
	c.Assert(err, qt.IsNil)
	c.Assert(supported, qt.Equals, false)

	supported, err = surface.SupportsPresent(core.DeviceSelection{})
	c.Assert(err, qt.IsNil)
	c.Assert(supported, qt.Equals, false)

	surface.Destroy()
	surface.Destroy()
	c.Assert(d.events, qt.DeepEquals, []string{"acquire:instance", "acquire:surface", "release:surface"})
}

func TestSurfaceFailures(t *testing.T) {
	c := qt.New(t)

	d := newFakeDriver()
	backend := newBackend(d, core.InstanceConfiguration{})

	_, err := core.NewSurface(backend, nil)
	c.Assert(errors.Is(err, core.ErrSurfaceCreationFailed), qt.Equals, true)
	c.Assert(d.called("CreateSurface"), qt.Equals, false)

	_, err = core.NewSurface(backend, fakeWindow{err: errFake})
	c.Assert(errors.Is(err, core.ErrSurfaceCreationFailed), qt.Equals, true)
	c.Assert(err, qt.ErrorMatches, "VK_ERROR_INITIALIZATION_FAILED: surface creation failed")
}
