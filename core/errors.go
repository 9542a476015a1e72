// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/pkg/errors"
)

// Startup errors. Every one of them is fatal, nothing is retried.
var (
	ErrBackendUnavailable         = errors.New("graphics backend unavailable")
	ErrNoDeviceSupport            = errors.New("no physical device with graphics backend support")
	ErrNoSuitableDevice           = errors.New("no physical device with the required queue capabilities")
	ErrDeviceCreationFailed       = errors.New("logical device creation failed")
	ErrSurfaceCreationFailed      = errors.New("surface creation failed")
	ErrNoPresentationSupport      = errors.New("queue family cannot present to surface")
	ErrSwapchainNegotiationFailed = errors.New("swapchain negotiation failed")
	ErrSwapchainCreationFailed    = errors.New("swapchain creation failed")
)

var stages = []struct {
	err   error
	stage string
}{
	{ErrBackendUnavailable, "backend"},
	{ErrNoDeviceSupport, "device"},
	{ErrNoSuitableDevice, "device"},
	{ErrDeviceCreationFailed, "logical device"},
	{ErrSurfaceCreationFailed, "surface"},
	{ErrNoPresentationSupport, "surface"},
	{ErrSwapchainNegotiationFailed, "swapchain"},
	{ErrSwapchainCreationFailed, "swapchain"},
}

// Stage names the startup stage that produced err, or "unknown".
func Stage(err error) string {
	for _, s := range stages {
		if errors.Is(err, s.err) {
			return s.stage
		}
	}
	return "unknown"
}
