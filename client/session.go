// Client Session
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

// Package client implements one player session: it claims a seat,
// mirrors the server's view of the hand and either renders events for
// a human or answers prompts with a fixed strategy.
package client

import (
	"bufio"
	"fmt"
	"io"
	"os"

	ktp "go-ktp"
	"go-ktp/proto"
)

// Session is the state of one connected player
type Session struct {
	rwc   io.ReadWriteCloser
	local fmt.Stringer
	peer  fmt.Stringer

	seat ktp.Seat
	auto bool

	hand     ktp.Hand
	lead     ktp.Seat
	trickNo  int
	table    []ktp.Card
	pending  bool
	takenLog []string
	gotTotal bool

	ui io.Writer
}

// NewSession wraps an established connection.  LOCAL and PEER are the
// endpoint addresses used for traffic logging.
func NewSession(rwc io.ReadWriteCloser, local, peer fmt.Stringer,
	seat ktp.Seat, auto bool) *Session {
	return &Session{
		rwc:   rwc,
		local: local,
		peer:  peer,
		seat:  seat,
		auto:  auto,
		ui:    os.Stdout,
	}
}

// Run drives the session until the server closes the connection.  The
// return value is the process exit code: zero only if a well-formed
// TOTAL was received.
func (s *Session) Run() int {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(s.rwc)
		scanner.Split(proto.ScanCRLF)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var input chan string
	if !s.auto {
		input = make(chan string)
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				input <- scanner.Text()
			}
			close(input)
		}()
	}

	s.transmit(proto.Iam{Seat: s.seat})

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				s.rwc.Close()
				if s.gotTotal {
					return 0
				}
				return 1
			}
			s.serverLine(line)
		case cmd, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			s.command(cmd)
		}
	}
}

// transmit frames and sends a message to the server
func (s *Session) transmit(msg proto.Message) {
	line := msg.String()
	if s.auto {
		ktp.Wire(s.local, s.peer, line)
	}
	if _, err := io.WriteString(s.rwc, line+"\r\n"); err != nil {
		ktp.Debug.Print(err)
	}
}

// serverLine interprets one framed message from the server.  Unknown
// or malformed messages are dropped.
func (s *Session) serverLine(line string) {
	if s.auto {
		ktp.Wire(s.peer, s.local, line)
	}

	msg, err := proto.Parse(line)
	if err != nil {
		ktp.Debug.Printf("Dropping malformed message %q", line)
		return
	}

	switch msg := msg.(type) {
	case proto.Busy:
		s.showBusy(msg)

	case proto.Deal:
		s.hand = ktp.Hand(msg.Cards).Copy()
		s.lead = msg.Lead
		s.takenLog = nil
		s.showDeal(msg)

	case proto.Taken:
		// our contribution is found by this seat's offset from
		// the trick's leader
		if i := s.seat.Offset(s.lead); i < len(msg.Cards) {
			s.hand.Remove(msg.Cards[i])
		}
		s.lead = msg.Winner
		s.showTaken(msg)

	case proto.Trick:
		s.trickNo = msg.N
		s.table = msg.Cards
		s.pending = true
		s.showTrick(msg)

	case proto.Score:
		s.showScore("The scores are:", msg.Entries)

	case proto.Total:
		s.showScore("The total scores are:", msg.Entries)
		s.hand = nil
		s.gotTotal = true

	case proto.Wrong:
		s.showWrong(msg)
	}

	if s.auto && s.pending && len(s.hand) > 0 {
		s.play(s.choose())
	}
}

// play answers the pending prompt with CARD
func (s *Session) play(card ktp.Card) {
	s.transmit(proto.Trick{N: s.trickNo, Cards: []ktp.Card{card}})
	s.pending = false
}

// legal applies the table rules to CARD against the local view of the
// hand and the current trick
func (s *Session) legal(card ktp.Card) bool {
	if !s.hand.Has(card) {
		return false
	}
	if len(s.table) == 0 {
		return true
	}
	return card.Suit == s.table[0].Suit || !s.hand.HasSuit(s.table[0].Suit)
}
