// Server Connection
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

package client

import (
	"context"
	"net"
	"strconv"
	"strings"

	ws "nhooyr.io/websocket"
)

// Dial connects to the server.  HOST may be a host name or address
// reached over TCP on PORT, or a ws:// or wss:// URL.  FAMILY is
// "tcp", "tcp4" or "tcp6".
func Dial(host string, port uint, family string) (net.Conn, error) {
	if strings.HasPrefix(host, "ws://") || strings.HasPrefix(host, "wss://") {
		c, _, err := ws.Dial(context.Background(), host, nil)
		if err != nil {
			return nil, err
		}
		return ws.NetConn(context.Background(), c, ws.MessageText), nil
	}

	addr := net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
	return net.Dial(family, addr)
}
