// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"fmt"
	"strings"
)

// UndefinedExtent is the extent dimension a surface reports when the
// swapchain extent is left to the application.
const UndefinedExtent = ^uint32(0)

// Extent2D is a size in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// Defined reports whether the extent is not the undefined sentinel.
func (e Extent2D) Defined() bool {
	return e.Width != UndefinedExtent
}

func (e Extent2D) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// Format is a pixel encoding. Values follow the Vulkan enumeration.
type Format uint32

// Formats the bootstrap refers to by name.
const (
	FormatUndefined     Format = 0
	FormatR8G8B8A8Unorm Format = 37
	FormatR8G8B8A8Srgb  Format = 43
	FormatB8G8R8A8Unorm Format = 44
	FormatB8G8R8A8Srgb  Format = 50
)

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "UNDEFINED"
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8_UNORM"
	case FormatR8G8B8A8Srgb:
		return "R8G8B8A8_SRGB"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8_UNORM"
	case FormatB8G8R8A8Srgb:
		return "B8G8R8A8_SRGB"
	}
	return fmt.Sprintf("FORMAT(%d)", uint32(f))
}

// ColorSpace is the colour space of a presentable format.
type ColorSpace uint32

// ColorSpaceSrgbNonlinear is the nonlinear sRGB colour space.
const ColorSpaceSrgbNonlinear ColorSpace = 0

func (c ColorSpace) String() string {
	if c == ColorSpaceSrgbNonlinear {
		return "SRGB_NONLINEAR"
	}
	return fmt.Sprintf("COLOR_SPACE(%d)", uint32(c))
}

// SurfaceFormat pairs a pixel encoding with its colour space.
type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}

func (s SurfaceFormat) String() string {
	return s.Format.String() + "/" + s.ColorSpace.String()
}

// PresentMode decides when a presented image becomes visible.
type PresentMode uint32

// Present modes, values follow the Vulkan enumeration.
const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFifo        PresentMode = 2
	PresentModeFifoRelaxed PresentMode = 3
)

func (p PresentMode) String() string {
	switch p {
	case PresentModeImmediate:
		return "IMMEDIATE"
	case PresentModeMailbox:
		return "MAILBOX"
	case PresentModeFifo:
		return "FIFO"
	case PresentModeFifoRelaxed:
		return "FIFO_RELAXED"
	}
	return fmt.Sprintf("PRESENT_MODE(%d)", uint32(p))
}

// SurfaceTransform is a surface transform flag bit.
type SurfaceTransform uint32

// SurfaceTransformIdentity leaves the image as is.
const SurfaceTransformIdentity SurfaceTransform = 0x1

// CompositeAlpha is a composite alpha flag bit.
type CompositeAlpha uint32

// Composite alpha modes.
const (
	CompositeAlphaOpaque         CompositeAlpha = 0x1
	CompositeAlphaPreMultiplied  CompositeAlpha = 0x2
	CompositeAlphaPostMultiplied CompositeAlpha = 0x4
	CompositeAlphaInherit        CompositeAlpha = 0x8
)

// SharingMode controls queue family ownership of swapchain images.
type SharingMode uint32

// Sharing modes.
const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// SurfaceCapabilities is what a (device, surface) pair supports.
type SurfaceCapabilities struct {
	MinImageCount uint32
	// MaxImageCount of 0 means there is no limit.
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	CurrentTransform        SurfaceTransform
	SupportedCompositeAlpha CompositeAlpha
}

// QueueCapability is a set of queue family capabilities.
type QueueCapability uint32

// Queue capabilities, values follow Vulkan queue flag bits.
const (
	QueueGraphics QueueCapability = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparse
)

// Has reports whether every capability in required is present.
func (q QueueCapability) Has(required QueueCapability) bool {
	return q&required == required
}

func (q QueueCapability) String() string {
	var names []string
	for _, c := range []struct {
		bit  QueueCapability
		name string
	}{
		{QueueGraphics, "graphics"},
		{QueueCompute, "compute"},
		{QueueTransfer, "transfer"},
		{QueueSparse, "sparse"},
	} {
		if q&c.bit != 0 {
			names = append(names, c.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// QueueFamily describes one queue family of a physical device.
type QueueFamily struct {
	Index        uint32
	Capabilities QueueCapability
	QueueCount   uint32
}

// DeviceType classifies a physical device.
type DeviceType int

// Physical device types.
const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (d DeviceType) String() string {
	switch d {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	}
	return "other"
}

// MarshalText implements encoding.TextMarshaler.
func (d DeviceType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DeviceInfo describes available physical properties of a rendering device.
type DeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Type          DeviceType
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        uint64
}

// InstanceCreateInfo configures backend instance creation.
type InstanceCreateInfo struct {
	ApplicationName string
	EngineName      string
	APIVersion      Version
	Layers          []string
	Extensions      []string
}

// Version is a packed major.minor.patch API version.
type Version uint32

// MakeVersion packs a version the way Vulkan does.
func MakeVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", uint32(v)>>22, (uint32(v)>>12)&0x3ff, uint32(v)&0xfff)
}

// DeviceCreateInfo configures logical device creation with queues
// from a single family.
type DeviceCreateInfo struct {
	QueueFamily     uint32
	QueuePriorities []float32
	Extensions      []string
}

// SwapchainCreateInfo configures swapchain creation.
type SwapchainCreateInfo struct {
	Surface        Surface
	MinImageCount  uint32
	Format         SurfaceFormat
	Extent         Extent2D
	SharingMode    SharingMode
	PreTransform   SurfaceTransform
	CompositeAlpha CompositeAlpha
	PresentMode    PresentMode
	Clipped        bool
}

// DebugSeverity is a set of diagnostic message severities.
type DebugSeverity uint32

// Diagnostic severities.
const (
	DebugInfo DebugSeverity = 1 << iota
	DebugWarning
	DebugPerformance
	DebugError
	DebugVerbose
)

// DebugMessage is a single diagnostic message from the backend.
type DebugMessage struct {
	Severity DebugSeverity
	Prefix   string
	Code     int32
	Text     string
}

// DebugFunc receives diagnostic messages. It must not call back into
// the Driver.
type DebugFunc func(DebugMessage)
