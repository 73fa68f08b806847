// Client Session Tests
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
	"bytes"
	"io"
	"strings"
	"testing"

	ktp "go-ktp"
)

// nopCloser turns a buffer into the connection of a test session
type nopCloser struct{ io.Writer }

func (nopCloser) Read([]byte) (int, error) { return 0, io.EOF }
func (nopCloser) Close() error             { return nil }

func testSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	ui := new(bytes.Buffer)
	wire := new(bytes.Buffer)
	return &Session{
		rwc:  nopCloser{wire},
		seat: ktp.South,
		ui:   ui,
	}, ui, wire
}

func TestDealAndTakenMirror(t *testing.T) {
	s, _, _ := testSession()

	s.serverLine("DEAL1E2C3C4C5C6C7C8C9C10CJCQCKCAC")
	if len(s.hand) != 13 || s.lead != ktp.East {
		t.Fatalf("deal left hand %v, lead %s", s.hand, s.lead)
	}

	// east led; south is two seats after the leader
	s.serverLine("TAKEN12D3D4C5DW")
	if s.hand.Has(ktp.Card{Rank: 4, Suit: ktp.Clubs}) {
		t.Error("own contribution not removed from the hand")
	}
	if len(s.hand) != 12 {
		t.Errorf("hand has %d cards, want 12", len(s.hand))
	}
	if s.lead != ktp.West {
		t.Errorf("next leader = %s, want W", s.lead)
	}

	// the winner leads the next trick: south is three seats after
	// west and plays last
	s.serverLine("TAKEN22S3S4S5CN")
	if s.hand.Has(ktp.Card{Rank: 5, Suit: ktp.Clubs}) {
		t.Error("second contribution not removed")
	}
	if len(s.hand) != 11 {
		t.Errorf("hand has %d cards, want 11", len(s.hand))
	}
}

func TestMalformedDropped(t *testing.T) {
	s, _, _ := testSession()
	s.serverLine("DEAL1N2C3C4C5C6C7C8C9C10CJCQCKCAC")

	for _, line := range []string{"", "GARBAGE", "DEAL9N", "TRICK14"} {
		s.serverLine(line)
	}
	if len(s.hand) != 13 || s.gotTotal {
		t.Error("malformed input changed the session")
	}
}

func TestTotalMarksCleanEnd(t *testing.T) {
	s, ui, _ := testSession()
	s.serverLine("DEAL1N2C3C4C5C6C7C8C9C10CJCQCKCAC")
	s.serverLine("SCOREN13E0S0W0")
	s.serverLine("TOTALN13E0S0W0")

	if !s.gotTotal {
		t.Error("TOTAL not registered")
	}
	if len(s.hand) != 0 {
		t.Error("hand not cleared by TOTAL")
	}

	out := ui.String()
	if !strings.Contains(out, "The scores are:\nN | 13\nE | 0\nS | 0\nW | 0\n") {
		t.Errorf("score table missing from %q", out)
	}
	if !strings.Contains(out, "The total scores are:\nN | 13\n") {
		t.Errorf("total table missing from %q", out)
	}
}

func TestChoose(t *testing.T) {
	s, _, _ := testSession()
	s.hand = ktp.Hand{
		{Rank: 2, Suit: ktp.Clubs},
		{Rank: 5, Suit: ktp.Hearts},
		{Rank: 9, Suit: ktp.Hearts},
	}

	s.table = nil
	if got := s.choose(); got != (ktp.Card{Rank: 2, Suit: ktp.Clubs}) {
		t.Errorf("leading choice = %v", got)
	}

	s.table = []ktp.Card{{Rank: ktp.Ace, Suit: ktp.Hearts}}
	if got := s.choose(); got != (ktp.Card{Rank: 5, Suit: ktp.Hearts}) {
		t.Errorf("following choice = %v", got)
	}

	s.table = []ktp.Card{{Rank: ktp.Ace, Suit: ktp.Spades}}
	if got := s.choose(); got != (ktp.Card{Rank: 2, Suit: ktp.Clubs}) {
		t.Errorf("void choice = %v", got)
	}
}

func TestCommands(t *testing.T) {
	s, ui, wire := testSession()
	s.hand = ktp.Hand{
		{Rank: 2, Suit: ktp.Clubs},
		{Rank: 5, Suit: ktp.Hearts},
	}

	s.command("cards")
	if got := ui.String(); got != "Your cards: 2C, 5H.\n" {
		t.Errorf("cards printed %q", got)
	}
	ui.Reset()

	s.command("bogus")
	if got := ui.String(); got != "Unknown command.\n" {
		t.Errorf("unknown command printed %q", got)
	}
	ui.Reset()

	// a card without a pending prompt is not a command either
	s.command("!2C")
	if got := ui.String(); got != "Unknown command.\n" {
		t.Errorf("unprompted play printed %q", got)
	}
	ui.Reset()

	s.trickNo = 4
	s.table = []ktp.Card{{Rank: ktp.Ace, Suit: ktp.Hearts}}
	s.pending = true

	// holding a heart, the club is refused locally
	s.command("!2C")
	if got := ui.String(); got != "Wrong card.\n" {
		t.Errorf("illegal play printed %q", got)
	}
	if !s.pending || wire.Len() != 0 {
		t.Error("illegal play was transmitted")
	}
	ui.Reset()

	s.command("!5H")
	if s.pending {
		t.Error("legal play left the prompt pending")
	}
	if got := wire.String(); got != "TRICK45H\r\n" {
		t.Errorf("transmitted %q", got)
	}
}
