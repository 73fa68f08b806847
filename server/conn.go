// Connection Management
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
	"bufio"
	"io"
	"net"

	ktp "go-ktp"
	"go-ktp/proto"
)

// lifecycle of a connection.  Open connections exchange messages;
// Draining ones only flush pending output before the socket closes;
// Closed ones are waiting to be reaped from the connection table.
type lifecycle uint8

const (
	open lifecycle = iota
	draining
	closed
)

type evKind uint8

const (
	evConnect evKind = iota
	evLine
	evGone
)

// event is the unit of work fed to the engine loop
type event struct {
	kind evKind
	conn *conn
	line string
}

// conn is one endpoint in the connection table.  All fields except
// the outbound queue are owned by the engine loop.
type conn struct {
	id    uint64
	rwc   net.Conn
	out   chan string
	state lifecycle

	seat  ktp.Seat
	bound bool
}

func (s *Server) newConn(rwc net.Conn) *conn {
	s.nextID++
	return &conn{
		id:  s.nextID,
		rwc: rwc,
		out: make(chan string, 512),
	}
}

// reader frames inbound bytes and forwards complete messages to the
// engine loop
func (c *conn) reader(events chan<- event) {
	scanner := bufio.NewScanner(c.rwc)
	scanner.Split(proto.ScanCRLF)
	for scanner.Scan() {
		events <- event{kind: evLine, conn: c, line: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		ktp.Debug.Printf("%s: %s", c.rwc.RemoteAddr(), err)
	}
	events <- event{kind: evGone, conn: c}
}

// writer flushes the outbound queue and closes the socket once the
// queue is closed.  Draining a connection therefore means enqueueing
// the final bytes and closing the queue.
func (c *conn) writer(events chan<- event) {
	for msg := range c.out {
		if _, err := io.WriteString(c.rwc, msg+"\r\n"); err != nil {
			ktp.Debug.Printf("%s: %s", c.rwc.RemoteAddr(), err)
			break
		}
	}
	c.rwc.Close()
	events <- event{kind: evGone, conn: c}
}
