// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/devblok/vkboot/core"
	"github.com/devblok/vkboot/gfx/vkr"
	log "github.com/sirupsen/logrus"
)

var (
	debugMode = flag.Bool("vkdbg", false, "enable the validation layer")
	indent    = flag.Bool("indent", false, "indent the JSON output")
	envFile   = flag.String("env", "", "dotenv file with VKBOOT_* settings")
)

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	cfg := configuration.Instance
	if *debugMode {
		cfg.DebugMode = true
	}

	backend, err := core.NewBackend(vkr.NewDriver(nil), cfg, log.StandardLogger())
	if err != nil {
		log.Fatal(err)
	}
	defer backend.Destroy()

	info, err := backend.DevicesInfo()
	if err != nil {
		log.Error(err)
		return
	}

	var bytes []byte
	if *indent {
		bytes, err = json.MarshalIndent(info, "", "  ")
	} else {
		bytes, err = json.Marshal(info)
	}
	if err != nil {
		log.Error(err)
		return
	}
	fmt.Printf("%s\n", bytes)
}
