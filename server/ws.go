// WebSocket Front End
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

package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"

	ktp "go-ktp"

	ws "nhooyr.io/websocket"
)

// listenWeb starts an HTTP listener that upgrades connections to
// WebSockets speaking the same wire protocol as the TCP front end
func (s *Server) listenWeb() error {
	addr := fmt.Sprintf("%s:%d", s.conf.Web.Host, s.conf.Web.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.web = &http.Server{Handler: http.HandlerFunc(s.upgrade)}
	go func() {
		if err := s.web.Serve(ln); err != http.ErrServerClosed {
			log.Print(err)
		}
	}()
	return nil
}

// upgrade accepts a WebSocket and registers it with the connection
// table, as if it had arrived over TCP
func (s *Server) upgrade(w http.ResponseWriter, r *http.Request) {
	c, err := ws.Accept(w, r, nil)
	if err != nil {
		ktp.Debug.Printf("Unable to upgrade connection: %s", err)
		return
	}

	log.Printf("New connection from %s", r.RemoteAddr)
	rwc := ws.NetConn(context.Background(), c, ws.MessageText)
	s.events <- event{kind: evConnect, conn: s.newConn(rwc)}
}

func (s *Server) closeWeb() {
	if s.web != nil {
		s.web.Close()
	}
}
