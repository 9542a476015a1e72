// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx/vkr"
	"github.com/devblok/vkboot/window"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	debugMode   = flag.Bool("vkdbg", false, "enable the validation layer and debug messages")
	verbose     = flag.Bool("v", false, "log lifecycle transitions")
	windowName  = flag.String("window", "", "window backend, one of sdl or glfw")
	envFile     = flag.String("env", "", "dotenv file with VKBOOT_* settings")
	strictCheck = flag.Bool("strict-present", false, "verify presentation support of the graphics queue")
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "vkboot: %s stage failed: %v\n", core.Stage(err), err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	if *debugMode {
		configuration.Instance.DebugMode = true
	}
	if *strictCheck {
		configuration.StrictPresent = true
	}
	if *windowName != "" {
		configuration.Window.Backend = *windowName
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	logger := log.StandardLogger()

	extent := core.NewFramebufferExtent(configuration.Window.Width, configuration.Window.Height)
	win, err := window.New(configuration.Window, extent, logger)
	if err != nil {
		log.Fatal(err)
	}

	configuration.Instance.Extensions = append(configuration.Instance.Extensions, win.InstanceExtensions()...)

	controller := core.NewController(vkr.NewDriver(win.ProcAddr()), configuration, extent, logger)
	if err := controller.Start(win); err != nil {
		win.Destroy()
		fatal(err)
	}

	swapchain := controller.Swapchain()
	log.WithFields(log.Fields{
		"device":      controller.Selection().Info.Name,
		"images":      len(swapchain.Images()),
		"format":      swapchain.Format(),
		"presentMode": swapchain.PresentMode(),
		"extent":      swapchain.Extent(),
	}).Info("Presentation ready")

	if err := controller.Run(win.Poll); err != nil {
		log.Error(err)
	}

	controller.Shutdown()
	win.Destroy()
	log.Info("Shut down")
}
