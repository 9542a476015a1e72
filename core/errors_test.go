// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"
)

func TestStage(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		err  error
		want string
	}{
		{core.ErrBackendUnavailable, "backend"},
		{errors.Wrap(core.ErrNoDeviceSupport, "enumerate"), "device"},
		{errors.Wrapf(core.ErrNoSuitableDevice, "required %s", "graphics"), "device"},
		{errors.Wrap(core.ErrDeviceCreationFailed, "VK_ERROR_OUT_OF_HOST_MEMORY"), "logical device"},
		{core.ErrSurfaceCreationFailed, "surface"},
		{core.ErrNoPresentationSupport, "surface"},
		{core.ErrSwapchainNegotiationFailed, "swapchain"},
		{errors.WithStack(core.ErrSwapchainCreationFailed), "swapchain"},
		{errors.New("something else"), "unknown"},
		{nil, "unknown"},
	}
	for _, test := range tests {
		c.Assert(core.Stage(test.err), qt.Equals, test.want, qt.Commentf("%v", test.err))
	}
}
