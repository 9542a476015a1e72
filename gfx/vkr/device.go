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

// EnumeratePhysicalDevices implements interface
func (d *Driver) EnumeratePhysicalDevices(instance gfx.Instance) ([]gfx.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(asInstance(instance), &deviceCount, nil)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(asInstance(instance), &deviceCount, availableDevices)); err != nil {
		return nil, errors.New("vk.EnumeratePhysicalDevices(): " + err.Error())
	}

	devices := make([]gfx.PhysicalDevice, deviceCount)
	for i := range devices {
		devices[i] = availableDevices[i]
	}
	return devices, nil
}

// DeviceInfo implements interface
func (d *Driver) DeviceInfo(device gfx.PhysicalDevice) gfx.DeviceInfo {
	var (
		info gfx.DeviceInfo
		pd   = asPhysicalDevice(device)
	)

	// Get extension info
	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &numDeviceExtensions, nil)); err != nil {
		info.Invalid = true
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &numDeviceExtensions, deviceExt)); err != nil {
		info.Invalid = true
	}
	for _, ext := range deviceExt {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	// Get layers info
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(pd, &numDeviceLayers, nil)); err != nil {
		info.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(pd, &numDeviceLayers, deviceLayers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range deviceLayers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	// Get memory info
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(pd, &memoryProperties)
	memoryProperties.Deref()
	for iMem := uint32(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		memoryProperties.MemoryHeaps[iMem].Deref()
		info.Memory += uint64(memoryProperties.MemoryHeaps[iMem].Size)
	}

	// Get general device info
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &properties)
	properties.Deref()
	info.ID = int(properties.DeviceID)
	info.VendorID = int(properties.VendorID)
	info.Name = vk.ToString(properties.DeviceName[:])
	info.DriverVersion = int(properties.DriverVersion)
	info.Type = deviceType(properties.DeviceType)

	return info
}

func deviceType(t vk.PhysicalDeviceType) gfx.DeviceType {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return gfx.DeviceTypeIntegratedGPU
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return gfx.DeviceTypeDiscreteGPU
	case vk.PhysicalDeviceTypeVirtualGpu:
		return gfx.DeviceTypeVirtualGPU
	case vk.PhysicalDeviceTypeCpu:
		return gfx.DeviceTypeCPU
	}
	return gfx.DeviceTypeOther
}

// QueueFamilies implements interface
func (d *Driver) QueueFamilies(device gfx.PhysicalDevice) []gfx.QueueFamily {
	var (
		pd               = asPhysicalDevice(device)
		queueFamilyCount uint32
	)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &queueFamilyCount, nil)
	if queueFamilyCount == 0 {
		return nil
	}
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &queueFamilyCount, queueFamilies)

	families := make([]gfx.QueueFamily, queueFamilyCount)
	for i := range queueFamilies {
		queueFamilies[i].Deref()
		families[i] = gfx.QueueFamily{
			Index:        uint32(i),
			Capabilities: gfx.QueueCapability(queueFamilies[i].QueueFlags),
			QueueCount:   queueFamilies[i].QueueCount,
		}
	}
	return families
}

// SurfaceSupport implements interface
func (d *Driver) SurfaceSupport(device gfx.PhysicalDevice, family uint32, surface gfx.Surface) (bool, error) {
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(asPhysicalDevice(device), family, asSurface(surface), &supported)); err != nil {
		return false, errors.New("vk.GetPhysicalDeviceSurfaceSupport(): " + err.Error())
	}
	return supported == vk.True, nil
}

// CreateDevice implements interface
func (d *Driver) CreateDevice(physical gfx.PhysicalDevice, info gfx.DeviceCreateInfo) (gfx.Device, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: info.QueueFamily,
		QueueCount:       uint32(len(info.QueuePriorities)),
		PQueuePriorities: info.QueuePriorities,
	}}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(asPhysicalDevice(physical), &dci, nil, &device)); err != nil {
		return nil, errors.New("vk.CreateDevice(): " + err.Error())
	}
	return device, nil
}

// DeviceQueue implements interface
func (d *Driver) DeviceQueue(device gfx.Device, family, index uint32) gfx.Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(asDevice(device), family, index, &queue)
	return queue
}

// DestroyDevice implements interface
func (d *Driver) DestroyDevice(device gfx.Device) {
	vk.DestroyDevice(asDevice(device), nil)
}
