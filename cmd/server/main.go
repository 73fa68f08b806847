// Server Entry Point
//
// Copyright (c) 2024  Philip Kaludercic
//
// This file is part of go-ktp.
//
// go-ktp is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-ktp is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-ktp. If not, see
// <http://www.gnu.org/licenses/>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	ktp "go-ktp"
	"go-ktp/conf"
	"go-ktp/server"
)

// Default file name for the configuration file
const defconf = "ktp.toml"

func main() {
	var (
		confFile = flag.String("conf", defconf, "Name of configuration file")
		dumpConf = flag.Bool("dump-config", false, "Dump effective configuration")
		debug    = flag.Bool("debug", false, "Enable debug output")

		port    = flag.Uint("p", 0, "TCP port to bind, 0 for an ephemeral port")
		deals   = flag.String("f", "", "Deal file (required)")
		timeout = flag.Uint("t", 5, "No-play timeout in seconds")
		web     = flag.Uint("w", 0, "WebSocket port, 0 to disable")
	)

	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load the configuration from disk (if available)
	config, err := conf.Load(*confFile)
	if err != nil {
		if !os.IsNotExist(err) || *confFile != defconf {
			log.Fatal(err)
		}
		config = conf.Default()
	}

	// Explicitly given flags win over the configuration file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			config.TCP.Port = *port
		case "t":
			config.Game.Timeout = *timeout
		case "f":
			config.Game.Deals = *deals
		case "w":
			config.Web.Enabled = *web != 0
			config.Web.Port = *web
		case "debug":
			config.Debug = *debug
		}
	})

	if config.Debug {
		ktp.Debug.SetOutput(os.Stderr)
		ktp.Debug.Println("Debug logging has been enabled")
	}

	if *dumpConf {
		if err := config.Dump(os.Stdout); err != nil {
			log.Fatalln("Failed to dump configuration:", err)
		}
		os.Exit(0)
	}

	if config.Game.Deals == "" {
		log.Fatal("Missing deal file")
	}
	if config.Game.Timeout == 0 {
		log.Fatal("Timeout must be greater than 0")
	}

	rounds, err := ktp.LoadDeals(config.Game.Deals)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.New(config, rounds)
	if err := srv.Listen(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Listening on %s", srv.Addr())

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
