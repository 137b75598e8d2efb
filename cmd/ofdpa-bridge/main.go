// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present The ofdpa-bridge Authors

package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/atriumos/ofdpa-bridge/bridge"
)

var (
	configPath = flag.String("config", "ofdpa-bridge.json", "path to bridge config")
)

func init() {
	// Set up logger
	log.SetReportCaller(true)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	// cmdline args
	flag.Parse()

	// Read and parse json startup file.
	conf, err := bridge.LoadConfigFile(*configPath)
	if err != nil {
		log.Fatalln("Error reading conf file:", err)
	}

	log.SetLevel(conf.LogLevel)

	log.Infof("%+v", conf)

	app := bridge.NewApp(conf)

	// blocking
	if err := app.Run(); err != nil {
		log.Fatalln("controller exited:", err)
	}
}
