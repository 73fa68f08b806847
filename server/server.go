// Table Service
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

// Package server runs one Kierki table.  A single engine goroutine
// owns the connection table, the seat bindings and the match state;
// per-connection reader and writer goroutines only move bytes.
package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	ktp "go-ktp"
	"go-ktp/conf"
	"go-ktp/game"
	"go-ktp/proto"
)

// Server drives a match over a set of network connections
type Server struct {
	conf  *conf.Conf
	match *game.Match

	ln     net.Listener
	web    *http.Server
	events chan event

	conns  map[uint64]*conn
	seats  [4]*conn
	nextID uint64

	timeout time.Duration
	timer   *time.Timer
}

// New prepares a server for one match over DEALS
func New(c *conf.Conf, deals []ktp.Deal) *Server {
	return &Server{
		conf:    c,
		match:   game.New(deals),
		events:  make(chan event, 64),
		conns:   make(map[uint64]*conn),
		timeout: time.Duration(c.Game.Timeout) * time.Second,
	}
}

// Listen binds the TCP listener (and the WebSocket front end, if
// enabled).  Port 0 binds an ephemeral port.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.conf.TCP.Host, s.conf.TCP.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln

	if s.conf.Web.Enabled {
		if err := s.listenWeb(); err != nil {
			ln.Close()
			return err
		}
	}
	return nil
}

// Addr returns the bound listener address
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

func (s *Server) accept() {
	for {
		rwc, err := s.ln.Accept()
		if err != nil {
			ktp.Debug.Print(err)
			return
		}
		log.Printf("New connection from %s", rwc.RemoteAddr())
		s.events <- event{kind: evConnect, conn: s.newConn(rwc)}
	}
}

// Run drives the match to completion.  It returns once the last
// round is scored and every outbound buffer has been flushed.
func (s *Server) Run() error {
	go s.accept()

	s.timer = time.NewTimer(s.timeout)
	defer s.timer.Stop()

	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		case <-s.timer.C:
			s.expire()
			s.timer.Reset(s.timeout)
		}

		if s.match.Done() && len(s.conns) == 0 {
			return nil
		}
	}
}

func (s *Server) handle(ev event) {
	c := ev.conn
	switch ev.kind {
	case evConnect:
		if s.match.Done() {
			c.rwc.Close()
			return
		}
		s.conns[c.id] = c
		go c.reader(s.events)
		go c.writer(s.events)

	case evLine:
		if _, ok := s.conns[c.id]; !ok || c.state != open {
			return
		}
		ktp.Wire(c.rwc.RemoteAddr(), s.ln.Addr(), ev.line)
		if c.bound {
			s.fromSeat(c, ev.line)
		} else {
			s.fromStranger(c, ev.line)
		}

	case evGone:
		if _, ok := s.conns[c.id]; !ok {
			return
		}
		delete(s.conns, c.id)
		s.vacate(c)
		if c.state == open {
			c.state = closed
			close(c.out)
		}
	}
}

// fromStranger interprets a message from a connection that has not
// claimed a seat.  Anything but a well-formed IAM closes it without a
// reply.
func (s *Server) fromStranger(c *conn, line string) {
	msg, err := proto.Parse(line)
	iam, ok := msg.(proto.Iam)
	if err != nil || !ok {
		s.hangup(c)
		return
	}

	if s.seats[iam.Seat] != nil {
		var busy proto.Busy
		for _, seat := range ktp.Seats {
			if s.seats[seat] != nil {
				busy.Seats = append(busy.Seats, seat)
			}
		}
		s.send(c, busy)
		s.drain(c)
		return
	}

	c.bound = true
	c.seat = iam.Seat
	s.seats[iam.Seat] = c
	s.deliver(s.match.Bind(iam.Seat))
}

// fromSeat interprets a message from a bound connection.  Only a
// trick response carrying exactly one card is acceptable; anything
// else is peer misbehaviour and vacates the seat.
func (s *Server) fromSeat(c *conn, line string) {
	msg, err := proto.Parse(line)
	trick, ok := msg.(proto.Trick)
	if err != nil || !ok || len(trick.Cards) != 1 {
		s.hangup(c)
		return
	}
	s.deliver(s.match.Play(c.seat, trick.Cards[0]))
}

// expire fires when the wait deadline elapses: unclaimed connections
// are dropped and the pending prompt is re-issued
func (s *Server) expire() {
	for _, c := range s.conns {
		if !c.bound && c.state == open {
			s.hangup(c)
		}
	}
	s.deliver(s.match.Expire())
}

// deliver puts outbound messages on their seats' queues.  Sending a
// prompt rearms the no-play deadline; scoring the last round starts
// the shutdown sequence.
func (s *Server) deliver(outs []game.Out) {
	prompted := false
	for _, out := range outs {
		if c := s.seats[out.To]; c != nil {
			s.send(c, out.Msg)
		}
		if _, ok := out.Msg.(proto.Trick); ok {
			prompted = true
		}
	}
	if prompted {
		s.rearm()
	}
	if s.match.Done() {
		s.shutdown()
	}
}

func (s *Server) send(c *conn, msg proto.Message) {
	if c.state != open {
		return
	}
	line := msg.String()
	ktp.Wire(s.ln.Addr(), c.rwc.RemoteAddr(), line)
	select {
	case c.out <- line:
	default:
		// the peer has not drained hundreds of messages; give up
		log.Printf("%s: outbound queue overrun", c.rwc.RemoteAddr())
		s.hangup(c)
	}
}

// drain flushes pending output and then closes the connection
func (s *Server) drain(c *conn) {
	if c.state != open {
		return
	}
	c.state = draining
	close(c.out)
}

// hangup closes a connection without a reply
func (s *Server) hangup(c *conn) {
	if c.state != open {
		return
	}
	s.vacate(c)
	c.state = closed
	close(c.out)
}

func (s *Server) vacate(c *conn) {
	if !c.bound {
		return
	}
	c.bound = false
	s.seats[c.seat] = nil
	s.match.Unbind(c.seat)
}

func (s *Server) rearm() {
	if !s.timer.Stop() {
		select {
		case <-s.timer.C:
		default:
		}
	}
	s.timer.Reset(s.timeout)
}

// shutdown drains every connection and stops accepting new ones; Run
// returns once the flushes complete
func (s *Server) shutdown() {
	for _, c := range s.conns {
		s.drain(c)
	}
	s.ln.Close()
	s.closeWeb()
}
