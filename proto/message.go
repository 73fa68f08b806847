// Wire Messages
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

// Package proto implements the Kierki table protocol: the framed,
// case-sensitive message grammar spoken between server and client.
// Both sides share the one parser and the one set of serialisers, so
// the grammar cannot drift between them.
package proto

import (
	"strconv"
	"strings"

	ktp "go-ktp"
)

// Message is one protocol message.  The concrete type tags the
// message kind; String returns the wire form without the trailing
// CR+LF frame delimiter.
type Message interface {
	String() string
	message()
}

// Iam claims a seat for the sending connection
type Iam struct {
	Seat ktp.Seat
}

// Busy rejects a seat claim and lists the seats already taken
type Busy struct {
	Seats []ktp.Seat
}

// Deal announces a new round to one seat: the round type, the seat
// leading the first trick and the recipient's thirteen cards
type Deal struct {
	Type  int
	Lead  ktp.Seat
	Cards []ktp.Card
}

// Trick is both the server's prompt (zero to three cards already on
// the table, in lead order) and the actor's response (exactly one
// card)
type Trick struct {
	N     int
	Cards []ktp.Card
}

// Taken announces a completed trick: the four cards in play order and
// the seat that takes them
type Taken struct {
	N      int
	Cards  []ktp.Card
	Winner ktp.Seat
}

// Wrong tells the actor that its last response was illegal
type Wrong struct {
	N int
}

// ScoreEntry is one seat's point count in a Score or Total message
type ScoreEntry struct {
	Seat   ktp.Seat
	Points int
}

// Score reports the points of the round that just ended
type Score struct {
	Entries [4]ScoreEntry
}

// Total reports the cumulative points after the round that just ended
type Total struct {
	Entries [4]ScoreEntry
}

func (Iam) message()   {}
func (Busy) message()  {}
func (Deal) message()  {}
func (Trick) message() {}
func (Taken) message() {}
func (Wrong) message() {}
func (Score) message() {}
func (Total) message() {}

func writeCards(sb *strings.Builder, cards []ktp.Card) {
	for _, c := range cards {
		sb.WriteString(c.String())
	}
}

func (m Iam) String() string {
	return "IAM" + m.Seat.String()
}

func (m Busy) String() string {
	var sb strings.Builder
	sb.WriteString("BUSY")
	for _, s := range m.Seats {
		sb.WriteByte(s.Letter())
	}
	return sb.String()
}

func (m Deal) String() string {
	var sb strings.Builder
	sb.WriteString("DEAL")
	sb.WriteString(strconv.Itoa(m.Type))
	sb.WriteByte(m.Lead.Letter())
	writeCards(&sb, m.Cards)
	return sb.String()
}

func (m Trick) String() string {
	var sb strings.Builder
	sb.WriteString("TRICK")
	sb.WriteString(strconv.Itoa(m.N))
	writeCards(&sb, m.Cards)
	return sb.String()
}

func (m Taken) String() string {
	var sb strings.Builder
	sb.WriteString("TAKEN")
	sb.WriteString(strconv.Itoa(m.N))
	writeCards(&sb, m.Cards)
	sb.WriteByte(m.Winner.Letter())
	return sb.String()
}

func (m Wrong) String() string {
	return "WRONG" + strconv.Itoa(m.N)
}

func writeEntries(sb *strings.Builder, entries [4]ScoreEntry) {
	for _, e := range entries {
		sb.WriteByte(e.Seat.Letter())
		sb.WriteString(strconv.Itoa(e.Points))
	}
}

func (m Score) String() string {
	var sb strings.Builder
	sb.WriteString("SCORE")
	writeEntries(&sb, m.Entries)
	return sb.String()
}

func (m Total) String() string {
	var sb strings.Builder
	sb.WriteString("TOTAL")
	writeEntries(&sb, m.Entries)
	return sb.String()
}
