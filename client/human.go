// Human Interface
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
	"fmt"
	"strings"

	ktp "go-ktp"
	"go-ktp/proto"
)

func joinCards(cards []ktp.Card) string {
	var parts []string
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}

// command handles one line from the human: either a table command or
// a card to play, introduced by an exclamation mark
func (s *Session) command(line string) {
	switch {
	case line == "cards":
		fmt.Fprintf(s.ui, "Your cards: %s.\n", joinCards(s.hand))

	case line == "tricks":
		fmt.Fprint(s.ui, strings.Join(s.takenLog, ""))

	case strings.HasPrefix(line, "!") && s.pending:
		card, err := ktp.ParseCard(line[1:])
		if err != nil || !s.legal(card) {
			fmt.Fprintln(s.ui, "Wrong card.")
			return
		}
		s.play(card)

	default:
		fmt.Fprintln(s.ui, "Unknown command.")
	}
}

func (s *Session) showBusy(msg proto.Busy) {
	if s.auto {
		return
	}
	var letters []string
	for _, seat := range msg.Seats {
		letters = append(letters, seat.String())
	}
	fmt.Fprintf(s.ui, "Place busy, list of busy places received: %s.\n",
		strings.Join(letters, ", "))
}

func (s *Session) showDeal(msg proto.Deal) {
	if s.auto {
		return
	}
	fmt.Fprintf(s.ui, "New deal %d: starting place %s, your cards: %s.\n",
		msg.Type, msg.Lead, joinCards(msg.Cards))
}

func (s *Session) showTaken(msg proto.Taken) {
	if s.auto {
		return
	}
	fmt.Fprintf(s.ui, "A trick %d is taken by %s, cards %s.\n",
		msg.N, msg.Winner, joinCards(msg.Cards))
	s.takenLog = append(s.takenLog, joinCards(msg.Cards)+"\n")
}

func (s *Session) showTrick(msg proto.Trick) {
	if s.auto {
		return
	}
	fmt.Fprintf(s.ui, "Trick: (%d) %s\n", msg.N, joinCards(msg.Cards))
	fmt.Fprintf(s.ui, "Available: %s\n", joinCards(s.hand))
}

func (s *Session) showScore(head string, entries [4]proto.ScoreEntry) {
	if s.auto {
		return
	}
	fmt.Fprintln(s.ui, head)
	for _, e := range entries {
		fmt.Fprintf(s.ui, "%s | %d\n", e.Seat, e.Points)
	}
}

func (s *Session) showWrong(msg proto.Wrong) {
	if s.auto {
		return
	}
	fmt.Fprintf(s.ui, "Wrong message received in trick %d.\n", msg.N)
}
