// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"errors"

	"github.com/devblok/vkboot/gfx"
	vk "github.com/vulkan-go/vulkan"
)

// CreateSurface implements interface
func (d *Driver) CreateSurface(instance gfx.Instance, target gfx.SurfaceTarget) (gfx.Surface, error) {
	ptr, err := target.CreateSurface(asInstance(instance))
	if err != nil {
		return nil, err
	}
	if ptr == 0 {
		return nil, errors.New("window returned a null surface")
	}
	return vk.SurfaceFromPointer(ptr), nil
}

// DestroySurface implements interface
func (d *Driver) DestroySurface(instance gfx.Instance, surface gfx.Surface) {
	vk.DestroySurface(asInstance(instance), asSurface(surface), nil)
}

// SurfaceCapabilities implements interface
func (d *Driver) SurfaceCapabilities(device gfx.PhysicalDevice, surface gfx.Surface) (gfx.SurfaceCapabilities, error) {
	var surfaceCapabilities vk.SurfaceCapabilities
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(asPhysicalDevice(device), asSurface(surface), &surfaceCapabilities)); err != nil {
		return gfx.SurfaceCapabilities{}, errors.New("vk.GetPhysicalDeviceSurfaceCapabilities(): " + err.Error())
	}
	surfaceCapabilities.Deref()
	surfaceCapabilities.CurrentExtent.Deref()
	surfaceCapabilities.MinImageExtent.Deref()
	surfaceCapabilities.MaxImageExtent.Deref()

	return gfx.SurfaceCapabilities{
		MinImageCount:           surfaceCapabilities.MinImageCount,
		MaxImageCount:           surfaceCapabilities.MaxImageCount,
		CurrentExtent:           extent(surfaceCapabilities.CurrentExtent),
		MinImageExtent:          extent(surfaceCapabilities.MinImageExtent),
		MaxImageExtent:          extent(surfaceCapabilities.MaxImageExtent),
		CurrentTransform:        gfx.SurfaceTransform(surfaceCapabilities.CurrentTransform),
		SupportedCompositeAlpha: gfx.CompositeAlpha(surfaceCapabilities.SupportedCompositeAlpha),
	}, nil
}

func extent(e vk.Extent2D) gfx.Extent2D {
	return gfx.Extent2D{Width: e.Width, Height: e.Height}
}

// SurfaceFormats implements interface
func (d *Driver) SurfaceFormats(device gfx.PhysicalDevice, surface gfx.Surface) ([]gfx.SurfaceFormat, error) {
	var surfaceFormatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(asPhysicalDevice(device), asSurface(surface), &surfaceFormatCount, nil)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfaceFormats(): " + err.Error())
	}
	if surfaceFormatCount == 0 {
		return nil, nil
	}

	surfaceFormats := make([]vk.SurfaceFormat, surfaceFormatCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(asPhysicalDevice(device), asSurface(surface), &surfaceFormatCount, surfaceFormats)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfaceFormats(): " + err.Error())
	}

	formats := make([]gfx.SurfaceFormat, surfaceFormatCount)
	for i := range formats {
		surfaceFormats[i].Deref()
		formats[i] = gfx.SurfaceFormat{
			Format:     gfx.Format(surfaceFormats[i].Format),
			ColorSpace: gfx.ColorSpace(surfaceFormats[i].ColorSpace),
		}
	}
	return formats, nil
}

// SurfacePresentModes implements interface
func (d *Driver) SurfacePresentModes(device gfx.PhysicalDevice, surface gfx.Surface) ([]gfx.PresentMode, error) {
	var presentModeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(asPhysicalDevice(device), asSurface(surface), &presentModeCount, nil)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfacePresentModes(): " + err.Error())
	}
	if presentModeCount == 0 {
		return nil, nil
	}

	presentModes := make([]vk.PresentMode, presentModeCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(asPhysicalDevice(device), asSurface(surface), &presentModeCount, presentModes)); err != nil {
		return nil, errors.New("vk.GetPhysicalDeviceSurfacePresentModes(): " + err.Error())
	}

	modes := make([]gfx.PresentMode, presentModeCount)
	for i, m := range presentModes {
		modes[i] = gfx.PresentMode(m)
	}
	return modes, nil
}

// CreateSwapchain implements interface
func (d *Driver) CreateSwapchain(device gfx.Device, info gfx.SwapchainCreateInfo) (gfx.Swapchain, error) {
	var clipped vk.Bool32 = vk.False
	if info.Clipped {
		clipped = vk.True
	}

	scci := vk.SwapchainCreateInfo{
		SType:           vk.StructureTypeSwapchainCreateInfo,
		Surface:         asSurface(info.Surface),
		MinImageCount:   info.MinImageCount,
		ImageFormat:     vk.Format(info.Format.Format),
		ImageColorSpace: vk.ColorSpace(info.Format.ColorSpace),
		ImageExtent: vk.Extent2D{
			Width:  info.Extent.Width,
			Height: info.Extent.Height,
		},
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingMode(info.SharingMode),
		PreTransform:     vk.SurfaceTransformFlagBits(info.PreTransform),
		CompositeAlpha:   vk.CompositeAlphaFlagBits(info.CompositeAlpha),
		PresentMode:      vk.PresentMode(info.PresentMode),
		Clipped:          clipped,
		OldSwapchain:     vk.NullSwapchain,
	}

	var swapchain vk.Swapchain
	if err := vk.Error(vk.CreateSwapchain(asDevice(device), &scci, nil, &swapchain)); err != nil {
		return nil, errors.New("vk.CreateSwapchain(): " + err.Error())
	}
	return swapchain, nil
}

// SwapchainImages implements interface
func (d *Driver) SwapchainImages(device gfx.Device, swapchain gfx.Swapchain) ([]gfx.Image, error) {
	var numImages uint32
	if err := vk.Error(vk.GetSwapchainImages(asDevice(device), asSwapchain(swapchain), &numImages, nil)); err != nil {
		return nil, errors.New("vk.GetSwapchainImages(num): " + err.Error())
	}

	swapchainImages := make([]vk.Image, numImages)
	if err := vk.Error(vk.GetSwapchainImages(asDevice(device), asSwapchain(swapchain), &numImages, swapchainImages)); err != nil {
		return nil, errors.New("vk.GetSwapchainImages(images): " + err.Error())
	}

	images := make([]gfx.Image, numImages)
	for i := range images {
		images[i] = swapchainImages[i]
	}
	return images, nil
}

// DestroySwapchain implements interface
func (d *Driver) DestroySwapchain(device gfx.Device, swapchain gfx.Swapchain) {
	vk.DestroySwapchain(asDevice(device), asSwapchain(swapchain), nil)
}
