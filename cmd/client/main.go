// Client Entry Point
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
	"log"
	"os"
	"strings"

	ktp "go-ktp"
	"go-ktp/client"
)

func main() {
	var (
		host  = flag.String("h", "", "Server host, address or ws:// URL (required)")
		port  = flag.Uint("p", 0, "Server port (required)")
		four  = flag.Bool("4", false, "Force IPv4")
		six   = flag.Bool("6", false, "Force IPv6")
		auto  = flag.Bool("a", false, "Play automatically")
		debug = flag.Bool("debug", false, "Enable debug output")

		north = flag.Bool("N", false, "Claim the northern seat")
		east  = flag.Bool("E", false, "Claim the eastern seat")
		south = flag.Bool("S", false, "Claim the southern seat")
		west  = flag.Bool("W", false, "Claim the western seat")
	)
	flag.Parse()

	if *debug {
		ktp.Debug.SetOutput(os.Stderr)
	}

	var (
		seat  ktp.Seat
		seats int
	)
	for i, claimed := range []bool{*north, *east, *south, *west} {
		if claimed {
			seat = ktp.Seats[i]
			seats++
		}
	}
	if seats != 1 {
		log.Fatal("Exactly one of -N, -E, -S, -W must be given")
	}

	if *host == "" {
		log.Fatal("Missing host name")
	}
	isWS := strings.HasPrefix(*host, "ws://") ||
		strings.HasPrefix(*host, "wss://")
	if *port == 0 && !isWS {
		log.Fatal("Missing port number")
	}

	family := "tcp"
	switch {
	case *four && *six:
		log.Fatal("At most one of -4 and -6 may be given")
	case *four:
		family = "tcp4"
	case *six:
		family = "tcp6"
	}

	conn, err := client.Dial(*host, *port, family)
	if err != nil {
		log.Fatal(err)
	}

	session := client.NewSession(conn,
		conn.LocalAddr(), conn.RemoteAddr(), seat, *auto)
	os.Exit(session.Run())
}
