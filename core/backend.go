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

// debugSeverities are the message severities the debug sink logs.
const debugSeverities = gfx.DebugWarning | gfx.DebugPerformance | gfx.DebugError

// NewBackend creates the backend instance. The surface extension is always
// enabled, debug mode adds the validation layer and the debug extension.
func NewBackend(driver gfx.Driver, cfg InstanceConfiguration, log logrus.FieldLogger) (*Backend, error) {
	layers := mergeNames(cfg.Layers)
	extensions := mergeNames([]string{SurfaceExtension}, cfg.Extensions)
	if cfg.DebugMode {
		layers = mergeNames(layers, []string{ValidationLayer})
		extensions = mergeNames(extensions, []string{DebugExtension})
	}

	log.WithFields(logrus.Fields{
		"layers":     layers,
		"extensions": extensions,
		"api":        cfg.APIVersion,
	}).Debug("creating backend instance")

	instance, err := driver.CreateInstance(gfx.InstanceCreateInfo{
		ApplicationName: cfg.ApplicationName,
		EngineName:      cfg.EngineName,
		APIVersion:      cfg.APIVersion,
		Layers:          layers,
		Extensions:      extensions,
	})
	if err != nil {
		return nil, errors.Wrap(ErrBackendUnavailable, err.Error())
	}

	return &Backend{
		driver:     driver,
		log:        log,
		instance:   instance,
		layers:     layers,
		extensions: extensions,
		debugMode:  cfg.DebugMode,
	}, nil
}

// Backend owns the backend instance and, in debug mode, the
// diagnostic message sink.
type Backend struct {
	driver gfx.Driver
	log    logrus.FieldLogger

	instance   gfx.Instance
	debugSink  gfx.DebugSink
	layers     []string
	extensions []string
	debugMode  bool
}

// Driver returns the driver the backend was created with.
func (b *Backend) Driver() gfx.Driver {
	return b.driver
}

// Instance returns the backend instance handle.
func (b *Backend) Instance() gfx.Instance {
	return b.instance
}

// Extensions returns the instance extensions that were enabled.
func (b *Backend) Extensions() []string {
	return b.extensions
}

// Layers returns the instance layers that were enabled.
func (b *Backend) Layers() []string {
	return b.layers
}

// DebugMode reports whether the backend was created for diagnostics.
func (b *Backend) DebugMode() bool {
	return b.debugMode
}

// EnableDebugSink registers the diagnostic message sink. It only logs and
// never affects control flow.
func (b *Backend) EnableDebugSink() error {
	if b.debugSink != nil {
		return nil
	}
	sink, err := b.driver.CreateDebugSink(b.instance, debugSeverities, b.logMessage)
	if err != nil {
		return err
	}
	b.debugSink = sink
	return nil
}

// DisableDebugSink removes the diagnostic message sink if present.
func (b *Backend) DisableDebugSink() {
	if b.debugSink == nil {
		return
	}
	b.driver.DestroyDebugSink(b.instance, b.debugSink)
	b.debugSink = nil
}

func (b *Backend) logMessage(msg gfx.DebugMessage) {
	entry := b.log.WithFields(logrus.Fields{
		"layer": msg.Prefix,
		"code":  msg.Code,
	})
	switch {
	case msg.Severity&gfx.DebugError != 0:
		entry.Error(msg.Text)
	case msg.Severity&(gfx.DebugWarning|gfx.DebugPerformance) != 0:
		entry.Warn(msg.Text)
	}
}

// Devices enumerates the physical devices exposed by the backend.
// The handles are borrowed, they are never destroyed.
func (b *Backend) Devices() ([]gfx.PhysicalDevice, error) {
	return b.driver.EnumeratePhysicalDevices(b.instance)
}

// DevicesInfo describes every physical device of the backend.
func (b *Backend) DevicesInfo() ([]gfx.DeviceInfo, error) {
	devices, err := b.Devices()
	if err != nil {
		return nil, err
	}
	info := make([]gfx.DeviceInfo, len(devices))
	for i, device := range devices {
		info[i] = b.driver.DeviceInfo(device)
	}
	return info, nil
}

// Destroy implements interface
func (b *Backend) Destroy() {
	if b.instance == nil {
		return
	}
	b.DisableDebugSink()
	b.driver.DestroyInstance(b.instance)
	b.instance = nil
}
