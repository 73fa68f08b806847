// Configuration
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

// Package conf holds the server configuration, read from an optional
// TOML file and overridden by command line flags.
package conf

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type TCPConf struct {
	Host string `toml:"host"`
	Port uint   `toml:"port"`
}

type WebConf struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    uint   `toml:"port"`
}

type GameConf struct {
	Deals   string `toml:"deals"`
	Timeout uint   `toml:"timeout"`
}

type Conf struct {
	Debug bool     `toml:"debug"`
	TCP   TCPConf  `toml:"tcp"`
	Web   WebConf  `toml:"web"`
	Game  GameConf `toml:"game"`
}

var defaultConfig = Conf{
	TCP: TCPConf{
		Host: "",
		Port: 0,
	},
	Web: WebConf{
		Enabled: false,
		Host:    "0.0.0.0",
		Port:    8080,
	},
	Game: GameConf{
		Timeout: 5,
	},
}

// Default returns a copy of the built-in configuration
func Default() *Conf {
	c := defaultConfig
	return &c
}

// Load reads NAME and merges it over the default configuration
func Load(name string) (*Conf, error) {
	c := Default()

	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	_, err = toml.NewDecoder(file).Decode(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Dump serialises the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
