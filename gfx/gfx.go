// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines the graphics backend vocabulary that the presentation
// bootstrap is written against. Backends implement Driver; handles are opaque
// and only meaningful to the Driver that produced them.
package gfx

// Opaque handles of backend objects. A handle produced by one Driver must
// only ever be passed back to that same Driver.
type (
	Instance       interface{}
	DebugSink      interface{}
	PhysicalDevice interface{}
	Device         interface{}
	Queue          interface{}
	Surface        interface{}
	Swapchain      interface{}
	Image          interface{}
)

// SurfaceTarget is a window that can be bound to a backend instance.
type SurfaceTarget interface {

	// CreateSurface creates the platform surface for the given instance
	// and returns the raw surface handle.
	CreateSurface(instance Instance) (uintptr, error)
}

// Driver describes every call the bootstrap makes into a graphics backend.
// Calls are synchronous and issued from a single goroutine.
type Driver interface {
	CreateInstance(info InstanceCreateInfo) (Instance, error)
	DestroyInstance(instance Instance)

	// CreateDebugSink registers fn to receive diagnostic messages of the
	// given severities.
	CreateDebugSink(instance Instance, severities DebugSeverity, fn DebugFunc) (DebugSink, error)
	DestroyDebugSink(instance Instance, sink DebugSink)

	EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, error)
	DeviceInfo(device PhysicalDevice) DeviceInfo
	QueueFamilies(device PhysicalDevice) []QueueFamily
	SurfaceSupport(device PhysicalDevice, family uint32, surface Surface) (bool, error)

	CreateDevice(physical PhysicalDevice, info DeviceCreateInfo) (Device, error)
	DeviceQueue(device Device, family, index uint32) Queue
	DestroyDevice(device Device)

	CreateSurface(instance Instance, target SurfaceTarget) (Surface, error)
	DestroySurface(instance Instance, surface Surface)

	SurfaceCapabilities(device PhysicalDevice, surface Surface) (SurfaceCapabilities, error)
	SurfaceFormats(device PhysicalDevice, surface Surface) ([]SurfaceFormat, error)
	SurfacePresentModes(device PhysicalDevice, surface Surface) ([]PresentMode, error)

	CreateSwapchain(device Device, info SwapchainCreateInfo) (Swapchain, error)
	SwapchainImages(device Device, swapchain Swapchain) ([]Image, error)
	DestroySwapchain(device Device, swapchain Swapchain)
}
