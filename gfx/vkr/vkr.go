// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr implements gfx.Driver on top of the Vulkan API.
package vkr

import (
	"errors"
	"unsafe"

	"github.com/devblok/vkboot/gfx"
	vk "github.com/vulkan-go/vulkan"
)

// NewDriver creates a Vulkan driver. The loader is resolved through
// procAddr, a vkGetInstanceProcAddr pointer as handed out by the windowing
// library. With a nil procAddr the system loader is used.
func NewDriver(procAddr unsafe.Pointer) *Driver {
	return &Driver{procAddr: procAddr}
}

// Driver is a Vulkan API gfx.Driver.
type Driver struct {
	procAddr unsafe.Pointer
	loaded   bool
}

var _ gfx.Driver = (*Driver)(nil)

func (d *Driver) load() error {
	if d.loaded {
		return nil
	}

	if d.procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return errors.New("vk.SetDefaultGetInstanceProcAddr(): " + err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(d.procAddr)
	}

	if err := vk.Init(); err != nil {
		return errors.New("vk.Init(): " + err.Error())
	}
	d.loaded = true
	return nil
}

// CreateInstance implements interface
func (d *Driver) CreateInstance(info gfx.InstanceCreateInfo) (gfx.Instance, error) {
	if err := d.load(); err != nil {
		return nil, err
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(info.APIVersion),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PApplicationName:   safeString(info.ApplicationName),
		PEngineName:        safeString(info.EngineName),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.New("vk.CreateInstance(): " + err.Error())
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.New("vk.InitInstance(): " + err.Error())
	}
	return instance, nil
}

// DestroyInstance implements interface
func (d *Driver) DestroyInstance(instance gfx.Instance) {
	vk.DestroyInstance(asInstance(instance), nil)
}

// CreateDebugSink implements interface
func (d *Driver) CreateDebugSink(instance gfx.Instance, severities gfx.DebugSeverity, fn gfx.DebugFunc) (gfx.DebugSink, error) {
	dci := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: reportFlags(severities),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint64, location uint, messageCode int32, pLayerPrefix string,
			pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
			fn(gfx.DebugMessage{
				Severity: severity(flags),
				Prefix:   pLayerPrefix,
				Code:     messageCode,
				Text:     pMessage,
			})
			return vk.False
		},
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(asInstance(instance), &dci, nil, &callback)); err != nil {
		return nil, errors.New("vk.CreateDebugReportCallback(): " + err.Error())
	}
	return callback, nil
}

// DestroyDebugSink implements interface
func (d *Driver) DestroyDebugSink(instance gfx.Instance, sink gfx.DebugSink) {
	callback, _ := sink.(vk.DebugReportCallback)
	vk.DestroyDebugReportCallback(asInstance(instance), callback, nil)
}

var severityFlags = []struct {
	severity gfx.DebugSeverity
	flag     vk.DebugReportFlagBits
}{
	{gfx.DebugInfo, vk.DebugReportInformationBit},
	{gfx.DebugWarning, vk.DebugReportWarningBit},
	{gfx.DebugPerformance, vk.DebugReportPerformanceWarningBit},
	{gfx.DebugError, vk.DebugReportErrorBit},
	{gfx.DebugVerbose, vk.DebugReportDebugBit},
}

func reportFlags(severities gfx.DebugSeverity) vk.DebugReportFlags {
	var flags vk.DebugReportFlags
	for _, sf := range severityFlags {
		if severities&sf.severity != 0 {
			flags |= vk.DebugReportFlags(sf.flag)
		}
	}
	return flags
}

func severity(flags vk.DebugReportFlags) gfx.DebugSeverity {
	var s gfx.DebugSeverity
	for _, sf := range severityFlags {
		if flags&vk.DebugReportFlags(sf.flag) != 0 {
			s |= sf.severity
		}
	}
	return s
}

func asInstance(h gfx.Instance) vk.Instance {
	instance, _ := h.(vk.Instance)
	return instance
}

func asPhysicalDevice(h gfx.PhysicalDevice) vk.PhysicalDevice {
	device, _ := h.(vk.PhysicalDevice)
	return device
}

func asDevice(h gfx.Device) vk.Device {
	device, _ := h.(vk.Device)
	return device
}

func asSurface(h gfx.Surface) vk.Surface {
	surface, _ := h.(vk.Surface)
	return surface
}

func asSwapchain(h gfx.Swapchain) vk.Swapchain {
	swapchain, _ := h.(vk.Swapchain)
	return swapchain
}
