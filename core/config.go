// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/devblok/vkboot/gfx"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Layer and extension names the bootstrap enables on its own.
const (
	ValidationLayer    = "VK_LAYER_KHRONOS_validation"
	DebugExtension     = "VK_EXT_debug_report"
	SurfaceExtension   = "VK_KHR_surface"
	SwapchainExtension = "VK_KHR_swapchain"
)

// Configuration defines a global bootstrap configuration
type Configuration struct {
	Instance InstanceConfiguration
	Device   DeviceConfiguration
	Time     TimeConfiguration
	Window   WindowConfiguration

	// StrictPresent verifies that the selected graphics queue family can
	// present to the window surface instead of assuming it.
	StrictPresent bool
}

// InstanceConfiguration is used to configure the backend instance
type InstanceConfiguration struct {
	ApplicationName string
	EngineName      string
	APIVersion      gfx.Version

	// DebugMode enables the validation layer and the debug
	// message sink
	DebugMode  bool
	Layers     []string
	Extensions []string
}

// DeviceConfiguration is used to configure device selection and
// the logical device
type DeviceConfiguration struct {
	QueueCapabilities gfx.QueueCapability
	Extensions        []string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the window event polling interval in milliseconds
	EventPollDelay int
}

// WindowConfiguration describes the window the surface is bound to
type WindowConfiguration struct {
	Title   string
	Width   uint32
	Height  uint32
	Backend string
}

// DefaultConfiguration is used when nothing is overridden
var DefaultConfiguration = Configuration{
	Instance: InstanceConfiguration{
		ApplicationName: "vkboot",
		EngineName:      "No Engine",
		APIVersion:      gfx.MakeVersion(1, 2, 0),
	},
	Device: DeviceConfiguration{
		QueueCapabilities: gfx.QueueGraphics,
		Extensions:        []string{SwapchainExtension},
	},
	Time: TimeConfiguration{
		EventPollDelay: 16,
	},
	Window: WindowConfiguration{
		Title:   "vkboot",
		Width:   800,
		Height:  600,
		Backend: "sdl",
	},
}

// LoadConfiguration builds a Configuration from DefaultConfiguration and
// the VKBOOT_* environment variables. Variables found in envFile, when
// given, take precedence over the process environment.
func LoadConfiguration(envFile string) (Configuration, error) {
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return Configuration{}, errors.Wrapf(err, "reading %s", envFile)
		}
		for k, v := range vars {
			envy.Set(k, v)
		}
	}

	cfg := DefaultConfiguration
	cfg.Device.Extensions = append([]string(nil), DefaultConfiguration.Device.Extensions...)

	var err error
	if cfg.Instance.DebugMode, err = envBool("VKBOOT_DEBUG", cfg.Instance.DebugMode); err != nil {
		return Configuration{}, err
	}
	if cfg.StrictPresent, err = envBool("VKBOOT_STRICT_PRESENT", cfg.StrictPresent); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Width, err = envUint32("VKBOOT_WIDTH", cfg.Window.Width); err != nil {
		return Configuration{}, err
	}
	if cfg.Window.Height, err = envUint32("VKBOOT_HEIGHT", cfg.Window.Height); err != nil {
		return Configuration{}, err
	}
	delay, err := envUint32("VKBOOT_POLL_DELAY", uint32(cfg.Time.EventPollDelay))
	if err != nil {
		return Configuration{}, err
	}
	cfg.Time.EventPollDelay = int(delay)

	cfg.Instance.ApplicationName = envy.Get("VKBOOT_APP_NAME", cfg.Instance.ApplicationName)
	cfg.Window.Title = envy.Get("VKBOOT_TITLE", cfg.Window.Title)
	cfg.Window.Backend = envy.Get("VKBOOT_WINDOW", cfg.Window.Backend)
	cfg.Instance.Layers = append(cfg.Instance.Layers, envList("VKBOOT_LAYERS")...)
	cfg.Instance.Extensions = append(cfg.Instance.Extensions, envList("VKBOOT_EXTENSIONS")...)
	cfg.Device.Extensions = append(cfg.Device.Extensions, envList("VKBOOT_DEVICE_EXTENSIONS")...)

	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.Wrapf(err, "%s", key)
	}
	return b, nil
}

func envUint32(key string, def uint32) (uint32, error) {
	v := envy.Get(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def, errors.Wrapf(err, "%s", key)
	}
	return uint32(n), nil
}

func envList(key string) []string {
	var list []string
	for _, v := range strings.Split(envy.Get(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
