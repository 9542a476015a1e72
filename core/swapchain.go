// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/devblok/vkboot/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PreferredSurfaceFormat is picked whenever the surface offers it.
var PreferredSurfaceFormat = gfx.SurfaceFormat{
	Format:     gfx.FormatB8G8R8A8Srgb,
	ColorSpace: gfx.ColorSpaceSrgbNonlinear,
}

// ChooseSurfaceFormat returns PreferredSurfaceFormat if it is listed,
// otherwise the first listed format as is.
func ChooseSurfaceFormat(available []gfx.SurfaceFormat) (gfx.SurfaceFormat, error) {
	if len(available) == 0 {
		return gfx.SurfaceFormat{}, errors.Wrap(ErrSwapchainNegotiationFailed, "surface reports no formats")
	}
	for _, f := range available {
		if f == PreferredSurfaceFormat {
			return f, nil
		}
	}
	return available[0], nil
}

// ChoosePresentMode returns mailbox if listed and FIFO otherwise.
// FIFO support is guaranteed by the API, so it is never checked.
func ChoosePresentMode(available []gfx.PresentMode) gfx.PresentMode {
	for _, m := range available {
		if m == gfx.PresentModeMailbox {
			return m
		}
	}
	return gfx.PresentModeFifo
}

// ChooseExtent returns the current surface extent if the surface defines
// one, untouched. Otherwise framebuffer is clamped into the surface bounds,
// each axis against its own bounds.
func ChooseExtent(capabilities gfx.SurfaceCapabilities, framebuffer gfx.Extent2D) gfx.Extent2D {
	if capabilities.CurrentExtent.Defined() {
		return capabilities.CurrentExtent
	}
	return gfx.Extent2D{
		Width:  clamp(framebuffer.Width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(framebuffer.Height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ImageCount asks for one image above the surface minimum, capped by the
// surface maximum when it has one.
func ImageCount(capabilities gfx.SurfaceCapabilities) uint32 {
	count := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && count > capabilities.MaxImageCount {
		count = capabilities.MaxImageCount
	}
	return count
}

// Negotiation is the outcome of matching the surface against the
// selection policy. It is computed for one build and never reused.
type Negotiation struct {
	Format       gfx.SurfaceFormat
	PresentMode  gfx.PresentMode
	Extent       gfx.Extent2D
	Capabilities gfx.SurfaceCapabilities
}

// NewNegotiator creates a swapchain negotiator reading the window size
// from extent.
func NewNegotiator(backend *Backend, extent *FramebufferExtent, log logrus.FieldLogger) *Negotiator {
	return &Negotiator{
		driver: backend.Driver(),
		extent: extent,
		log:    log,
	}
}

// Negotiator picks swapchain parameters and builds swapchains.
type Negotiator struct {
	driver gfx.Driver
	extent *FramebufferExtent
	log    logrus.FieldLogger
}

// Negotiate queries the surface of the selected device and applies the
// selection policy. The framebuffer extent is read exactly once.
func (n *Negotiator) Negotiate(selection DeviceSelection, surface *Surface) (Negotiation, error) {
	pd := selection.PhysicalDevice

	capabilities, err := n.driver.SurfaceCapabilities(pd, surface.Handle())
	if err != nil {
		return Negotiation{}, errors.Wrap(ErrSwapchainNegotiationFailed, err.Error())
	}

	formats, err := n.driver.SurfaceFormats(pd, surface.Handle())
	if err != nil {
		return Negotiation{}, errors.Wrap(ErrSwapchainNegotiationFailed, err.Error())
	}
	format, err := ChooseSurfaceFormat(formats)
	if err != nil {
		return Negotiation{}, err
	}

	modes, err := n.driver.SurfacePresentModes(pd, surface.Handle())
	if err != nil {
		return Negotiation{}, errors.Wrap(ErrSwapchainNegotiationFailed, err.Error())
	}
	if len(modes) == 0 {
		n.log.Warn("surface reports no present modes, assuming FIFO")
	}

	var framebuffer gfx.Extent2D
	if n.extent != nil {
		framebuffer = n.extent.Load()
	}

	result := Negotiation{
		Format:       format,
		PresentMode:  ChoosePresentMode(modes),
		Extent:       ChooseExtent(capabilities, framebuffer),
		Capabilities: capabilities,
	}
	n.log.WithFields(logrus.Fields{
		"format":      result.Format,
		"presentMode": result.PresentMode,
		"extent":      result.Extent,
		"framebuffer": framebuffer,
	}).Info("swapchain negotiated")
	return result, nil
}

// Build creates the swapchain on the logical device and fetches its images.
// Sharing is exclusive since graphics and presentation share one queue.
func (n *Negotiator) Build(device *LogicalDevice, surface *Surface, result Negotiation) (*Swapchain, error) {
	info := gfx.SwapchainCreateInfo{
		Surface:        surface.Handle(),
		MinImageCount:  ImageCount(result.Capabilities),
		Format:         result.Format,
		Extent:         result.Extent,
		SharingMode:    gfx.SharingModeExclusive,
		PreTransform:   result.Capabilities.CurrentTransform,
		CompositeAlpha: gfx.CompositeAlphaOpaque,
		PresentMode:    result.PresentMode,
		Clipped:        true,
	}

	swapchain, err := n.driver.CreateSwapchain(device.Device(), info)
	if err != nil {
		return nil, errors.Wrap(ErrSwapchainCreationFailed, err.Error())
	}

	images, err := n.driver.SwapchainImages(device.Device(), swapchain)
	if err != nil {
		n.driver.DestroySwapchain(device.Device(), swapchain)
		return nil, errors.Wrap(ErrSwapchainCreationFailed, err.Error())
	}

	n.log.WithFields(logrus.Fields{
		"images":    len(images),
		"requested": info.MinImageCount,
	}).Debug("swapchain created")

	return &Swapchain{
		driver:    n.driver,
		device:    device.Device(),
		swapchain: swapchain,
		images:    images,
		format:    result.Format,
		extent:    result.Extent,
		mode:      result.PresentMode,
	}, nil
}

// Swapchain owns the swapchain handle. Its images belong to the swapchain
// and are invalidated together with it.
type Swapchain struct {
	driver gfx.Driver
	device gfx.Device

	swapchain gfx.Swapchain
	images    []gfx.Image
	format    gfx.SurfaceFormat
	extent    gfx.Extent2D
	mode      gfx.PresentMode
}

// Handle returns the swapchain handle.
func (s *Swapchain) Handle() gfx.Swapchain {
	return s.swapchain
}

// Images returns the swapchain images.
func (s *Swapchain) Images() []gfx.Image {
	return s.images
}

// Format returns the image format.
func (s *Swapchain) Format() gfx.SurfaceFormat {
	return s.format
}

// Extent returns the image size.
func (s *Swapchain) Extent() gfx.Extent2D {
	return s.extent
}

// PresentMode returns the present mode.
func (s *Swapchain) PresentMode() gfx.PresentMode {
	return s.mode
}

// Destroy implements interface
func (s *Swapchain) Destroy() {
	if s.swapchain == nil {
		return
	}
	s.driver.DestroySwapchain(s.device, s.swapchain)
	s.swapchain = nil
	s.images = nil
}
