// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// State is a lifecycle stage of the Controller.
type State int

// Controller states in the order they are entered.
const (
	Uninitialized State = iota
	BackendReady
	DebugSinkReady
	DeviceSelected
	LogicalDeviceReady
	SurfaceReady
	SwapchainReady
	Running
	ShuttingDown
	TornDown
)

var stateNames = [...]string{
	Uninitialized:      "Uninitialized",
	BackendReady:       "BackendReady",
	DebugSinkReady:     "DebugSinkReady",
	DeviceSelected:     "DeviceSelected",
	LogicalDeviceReady: "LogicalDeviceReady",
	SurfaceReady:       "SurfaceReady",
	SwapchainReady:     "SwapchainReady",
	Running:            "Running",
	ShuttingDown:       "ShuttingDown",
	TornDown:           "TornDown",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// NewController creates a lifecycle controller. Nothing is acquired
// until Start.
func NewController(driver gfx.Driver, cfg Configuration, extent *FramebufferExtent, log logrus.FieldLogger) *Controller {
	return &Controller{
		driver:  driver,
		cfg:     cfg,
		extent:  extent,
		log:     log,
		state:   Uninitialized,
		history: []State{Uninitialized},
	}
}

// Controller sequences the bootstrap. Everything acquired is released in
// reverse order, on Shutdown or as soon as Start fails.
type Controller struct {
	driver gfx.Driver
	cfg    Configuration
	extent *FramebufferExtent
	log    logrus.FieldLogger

	state    State
	history  []State
	releases []release

	backend     *Backend
	selection   DeviceSelection
	device      *LogicalDevice
	surface     *Surface
	negotiation Negotiation
	swapchain   *Swapchain
}

type release struct {
	name string
	fn   func()
}

// Start runs the whole bootstrap up to SwapchainReady. On error every
// resource acquired so far is released and the controller is TornDown.
func (c *Controller) Start(target gfx.SurfaceTarget) (err error) {
	if c.state != Uninitialized {
		return errors.Errorf("controller cannot start from %s", c.state)
	}

	defer func() {
		if err != nil {
			c.log.WithError(err).Debug("startup failed, releasing")
			c.unwind()
			c.enter(TornDown)
		}
	}()

	backend, err := NewBackend(c.driver, c.cfg.Instance, c.log)
	if err != nil {
		return err
	}
	c.backend = backend
	c.acquired("backend", backend.Destroy)
	c.enter(BackendReady)

	if c.cfg.Instance.DebugMode {
		if err := backend.EnableDebugSink(); err != nil {
			c.log.WithError(err).Warn("debug sink unavailable, continuing without it")
		} else {
			c.acquired("debug sink", backend.DisableDebugSink)
			c.enter(DebugSinkReady)
		}
	}

	selection, err := SelectDevice(backend, c.cfg.Device.QueueCapabilities, c.log)
	if err != nil {
		return err
	}
	c.selection = selection
	c.enter(DeviceSelected)

	device, err := NewLogicalDevice(backend, selection, c.cfg.Device.Extensions, c.log)
	if err != nil {
		return err
	}
	c.device = device
	c.acquired("logical device", device.Destroy)
	c.enter(LogicalDeviceReady)

	surface, err := NewSurface(backend, target)
	if err != nil {
		return err
	}
	c.surface = surface
	c.acquired("surface", surface.Destroy)
	c.enter(SurfaceReady)

	if c.cfg.StrictPresent {
		supported, err := surface.SupportsPresent(selection)
		if err != nil {
			return errors.Wrap(ErrNoPresentationSupport, err.Error())
		}
		if !supported {
			return errors.Wrapf(ErrNoPresentationSupport, "family %d", selection.GraphicsFamilyIndex())
		}
	}

	negotiator := NewNegotiator(backend, c.extent, c.log)
	negotiation, err := negotiator.Negotiate(selection, surface)
	if err != nil {
		return err
	}
	c.negotiation = negotiation

	swapchain, err := negotiator.Build(device, surface, negotiation)
	if err != nil {
		return err
	}
	c.swapchain = swapchain
	c.acquired("swapchain", swapchain.Destroy)
	c.enter(SwapchainReady)

	return nil
}

// Run keeps the controller Running, calling poll on every event tick
// until it returns false.
func (c *Controller) Run(poll func() bool) error {
	if c.state != SwapchainReady {
		return errors.Errorf("controller cannot run from %s", c.state)
	}
	c.enter(Running)

	timeService := NewTime(c.cfg.Time)
	defer timeService.Stop()

	for range timeService.EventTicker().C {
		if !poll() {
			break
		}
	}
	c.log.Debug("event loop exited")
	return nil
}

// Shutdown releases everything in reverse acquisition order. It is safe to
// call in any state and more than once.
func (c *Controller) Shutdown() {
	if c.state == TornDown {
		return
	}
	c.enter(ShuttingDown)
	c.unwind()
	c.enter(TornDown)
}

func (c *Controller) acquired(name string, fn func()) {
	c.releases = append(c.releases, release{name: name, fn: fn})
}

func (c *Controller) unwind() {
	for i := len(c.releases) - 1; i >= 0; i-- {
		r := c.releases[i]
		c.log.WithField("resource", r.name).Debug("releasing")
		r.fn()
	}
	c.releases = nil
	c.swapchain = nil
	c.surface = nil
	c.device = nil
	c.backend = nil
}

func (c *Controller) enter(s State) {
	c.log.WithFields(logrus.Fields{
		"from": c.state,
		"to":   s,
	}).Debug("lifecycle transition")
	c.state = s
	c.history = append(c.history, s)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// History returns every state entered so far, in order.
func (c *Controller) History() []State {
	return append([]State(nil), c.history...)
}

// Backend returns the backend while it is alive.
func (c *Controller) Backend() *Backend {
	return c.backend
}

// Selection returns the device selection.
func (c *Controller) Selection() DeviceSelection {
	return c.selection
}

// Device returns the logical device while it is alive.
func (c *Controller) Device() *LogicalDevice {
	return c.device
}

// Surface returns the surface while it is alive.
func (c *Controller) Surface() *Surface {
	return c.surface
}

// Negotiation returns the parameters the swapchain was built with.
func (c *Controller) Negotiation() Negotiation {
	return c.negotiation
}

// Swapchain returns the swapchain while it is alive.
func (c *Controller) Swapchain() *Swapchain {
	return c.swapchain
}
