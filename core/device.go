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

// NewLogicalDevice creates the logical device with a single queue from the
// selected graphics family. The same queue is used for presentation.
func NewLogicalDevice(backend *Backend, selection DeviceSelection, extensions []string, log logrus.FieldLogger) (*LogicalDevice, error) {
	family, ok := selection.GraphicsFamily.Get()
	if !ok {
		return nil, ErrNoSuitableDevice
	}

	extensions = mergeNames(extensions)
	driver := backend.Driver()
	device, err := driver.CreateDevice(selection.PhysicalDevice, gfx.DeviceCreateInfo{
		QueueFamily:     family,
		QueuePriorities: []float32{1.0},
		Extensions:      extensions,
	})
	if err != nil {
		return nil, errors.Wrap(ErrDeviceCreationFailed, err.Error())
	}

	queue := driver.DeviceQueue(device, family, 0)
	log.WithFields(logrus.Fields{
		"family":     family,
		"extensions": extensions,
	}).Debug("logical device created")

	return &LogicalDevice{
		driver:        driver,
		device:        device,
		family:        family,
		graphicsQueue: queue,
		presentQueue:  queue,
	}, nil
}

// LogicalDevice owns the logical device. Its queues are only valid while
// the device lives and are never destroyed on their own.
type LogicalDevice struct {
	driver gfx.Driver

	device        gfx.Device
	family        uint32
	graphicsQueue gfx.Queue
	presentQueue  gfx.Queue
}

// Device returns the logical device handle.
func (d *LogicalDevice) Device() gfx.Device {
	return d.device
}

// QueueFamily returns the family the queues were created from.
func (d *LogicalDevice) QueueFamily() uint32 {
	return d.family
}

// GraphicsQueue returns the graphics queue.
func (d *LogicalDevice) GraphicsQueue() gfx.Queue {
	return d.graphicsQueue
}

// PresentQueue returns the present queue, the graphics queue itself.
func (d *LogicalDevice) PresentQueue() gfx.Queue {
	return d.presentQueue
}

// Destroy implements interface
func (d *LogicalDevice) Destroy() {
	if d.device == nil {
		return
	}
	d.driver.DestroyDevice(d.device)
	d.device = nil
	d.graphicsQueue = nil
	d.presentQueue = nil
}
