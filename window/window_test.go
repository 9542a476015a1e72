// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBackends(t *testing.T) {
	c := qt.New(t)

	c.Assert(Backends(), qt.DeepEquals, []string{"glfw", "sdl"})
}

func TestNewUnknownBackend(t *testing.T) {
	c := qt.New(t)

	log, _ := test.NewNullLogger()
	cfg := core.DefaultConfiguration.Window
	cfg.Backend = "wayland"

	w, err := New(cfg, core.NewFramebufferExtent(1, 1), log)
	c.Assert(w, qt.IsNil)
	c.Assert(err, qt.ErrorMatches, `unknown window backend "wayland", available: \[glfw sdl\]`)
}

func TestNewWithoutExtent(t *testing.T) {
	c := qt.New(t)

	log, _ := test.NewNullLogger()
	_, err := New(core.DefaultConfiguration.Window, nil, log)
	c.Assert(err, qt.ErrorMatches, "window needs a framebuffer extent")
}
