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

// FamilyIndex is an optional queue family index.
type FamilyIndex struct {
	index uint32
	set   bool
}

// SomeFamily returns a resolved FamilyIndex.
func SomeFamily(index uint32) FamilyIndex {
	return FamilyIndex{index: index, set: true}
}

// Get returns the index and whether it was resolved.
func (f FamilyIndex) Get() (uint32, bool) {
	return f.index, f.set
}

// Resolved reports whether an index is present.
func (f FamilyIndex) Resolved() bool {
	return f.set
}

// DeviceSelection is the chosen physical device together with the
// queue family the bootstrap will use on it.
type DeviceSelection struct {
	// PhysicalDevice is borrowed from the backend enumeration.
	PhysicalDevice gfx.PhysicalDevice
	Info           gfx.DeviceInfo
	Families       []gfx.QueueFamily
	GraphicsFamily FamilyIndex
}

// GraphicsFamilyIndex returns the resolved graphics family. Selections
// returned by SelectDevice are always resolved.
func (s DeviceSelection) GraphicsFamilyIndex() uint32 {
	index, _ := s.GraphicsFamily.Get()
	return index
}

// SelectDevice picks the first physical device, in enumeration order, that
// has a queue family with all of the required capabilities. On that device
// the last matching family is used.
//
// Graphics capability is assumed to imply presentation capability.
func SelectDevice(backend *Backend, required gfx.QueueCapability, log logrus.FieldLogger) (DeviceSelection, error) {
	if required == 0 {
		required = gfx.QueueGraphics
	}

	devices, err := backend.Devices()
	if err != nil {
		return DeviceSelection{}, errors.Wrap(ErrNoDeviceSupport, err.Error())
	}
	if len(devices) == 0 {
		return DeviceSelection{}, ErrNoDeviceSupport
	}

	driver := backend.Driver()
	for idx, device := range devices {
		families := driver.QueueFamilies(device)
		if len(families) == 0 {
			log.WithField("device", idx).Debug("device has no queue families, skipping")
			continue
		}

		family := lastFamilyWith(families, required)
		if !family.Resolved() {
			log.WithField("device", idx).Debug("device has no family with the required capabilities")
			continue
		}

		selection := DeviceSelection{
			PhysicalDevice: device,
			Info:           driver.DeviceInfo(device),
			Families:       families,
			GraphicsFamily: family,
		}
		log.WithFields(logrus.Fields{
			"device": selection.Info.Name,
			"type":   selection.Info.Type,
			"family": selection.GraphicsFamilyIndex(),
		}).Info("physical device selected")
		return selection, nil
	}

	return DeviceSelection{}, errors.Wrapf(ErrNoSuitableDevice, "required %s on %d device(s)", required, len(devices))
}

// lastFamilyWith scans families in order, every match overwrites
// the previous one.
func lastFamilyWith(families []gfx.QueueFamily, required gfx.QueueCapability) FamilyIndex {
	var found FamilyIndex
	for _, family := range families {
		if family.Capabilities.Has(required) {
			found = SomeFamily(family.Index)
		}
	}
	return found
}
