// Match Engine
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

// Package game drives a Kierki match from a scripted deal list.  The
// engine performs no I/O: every event handler returns the messages to
// put on the wire, addressed by seat, and the caller owns delivery.
package game

import (
	ktp "go-ktp"
	"go-ktp/proto"
)

// Phase of the current round
type Phase uint8

const (
	Dealing Phase = iota
	Playing
	Scoring
)

// Out is one outbound message addressed to a seat
type Out struct {
	To  ktp.Seat
	Msg proto.Message
}

// Match is the complete state of one match.  It is owned by a single
// caller; methods must not be invoked concurrently.
type Match struct {
	deals []ktp.Deal
	round int

	phase   Phase
	trickNo int
	trick   []ktp.Card
	leader  ktp.Seat
	actor   ktp.Seat
	prompt  bool

	hands    [4]ktp.Hand
	roundPts [4]int
	totalPts [4]int

	// completed tricks of the current round, for reconnection replay
	log []proto.Taken

	bound [4]bool
	done  bool
}

// New prepares a match over DEALS, which must be non-empty
func New(deals []ktp.Deal) *Match {
	return &Match{deals: deals}
}

// Done reports whether the last round has been scored
func (m *Match) Done() bool {
	return m.done
}

func (m *Match) allBound() bool {
	return m.bound[0] && m.bound[1] && m.bound[2] && m.bound[3]
}

// Bind attaches a connection to SEAT.  If a round is in progress the
// replay for that seat is returned first: its deal, every completed
// trick in order and, if the seat is the current actor, a fresh
// prompt.
func (m *Match) Bind(seat ktp.Seat) []Out {
	var outs []Out

	m.bound[seat] = true
	if m.phase == Playing {
		deal := m.deals[m.round]
		outs = append(outs, Out{seat, proto.Deal{
			Type:  deal.Type,
			Lead:  deal.Lead,
			Cards: deal.Hands[seat],
		}})
		for _, taken := range m.log {
			outs = append(outs, Out{seat, taken})
		}
		if seat == m.actor {
			m.prompt = true
		}
	}

	return append(outs, m.advance()...)
}

// Unbind vacates SEAT.  The seat's hand and scores survive; play
// stalls until the seat is bound again.
func (m *Match) Unbind(seat ktp.Seat) {
	m.bound[seat] = false
}

// Expire re-issues the pending prompt after a no-play timeout
func (m *Match) Expire() []Out {
	if m.phase != Playing || len(m.trick) == 4 {
		return nil
	}
	m.prompt = true
	return m.advance()
}

// Play handles a trick response from SEAT.  An illegal response earns
// the seat a WRONG message and changes nothing else.  The echoed
// trick number is deliberately not checked against the engine's: a
// response racing a re-prompt would otherwise be refused.
func (m *Match) Play(seat ktp.Seat, card ktp.Card) []Out {
	legal := m.phase == Playing &&
		seat == m.actor &&
		len(m.trick) < 4 &&
		m.hands[seat].Has(card) &&
		(len(m.trick) == 0 ||
			card.Suit == m.trick[0].Suit ||
			!m.hands[seat].HasSuit(m.trick[0].Suit))
	if !legal {
		return []Out{{seat, proto.Wrong{N: m.trickNo}}}
	}

	m.trick = append(m.trick, card)
	m.hands[seat].Remove(card)
	m.actor = m.actor.Next()
	m.prompt = true
	return m.advance()
}

// advance emits everything the current state calls for.  Nothing is
// emitted unless all four seats are bound; progress resumes on the
// next bind.
func (m *Match) advance() []Out {
	var outs []Out

	for m.allBound() && !m.done {
		switch m.phase {
		case Dealing:
			outs = append(outs, m.deal()...)

		case Playing:
			if len(m.trick) == 4 {
				outs = append(outs, m.takeTrick()...)
				continue
			}
			if m.prompt {
				m.prompt = false
				outs = append(outs, Out{m.actor, proto.Trick{
					N:     m.trickNo,
					Cards: m.trick,
				}})
			}
			return outs

		case Scoring:
			outs = append(outs, m.settle()...)
		}
	}

	return outs
}

// deal starts the next round
func (m *Match) deal() []Out {
	var outs []Out

	deal := m.deals[m.round]
	for _, seat := range ktp.Seats {
		m.hands[seat] = deal.Hands[seat].Copy()
		outs = append(outs, Out{seat, proto.Deal{
			Type:  deal.Type,
			Lead:  deal.Lead,
			Cards: deal.Hands[seat],
		}})
	}

	m.phase = Playing
	m.trickNo = 1
	m.trick = nil
	m.leader = deal.Lead
	m.actor = deal.Lead
	m.log = nil
	m.prompt = true
	return outs
}

// takeTrick settles a completed trick: the highest card of the led
// suit wins, the winner collects the round type's points and leads
// the next trick.
func (m *Match) takeTrick() []Out {
	var (
		winner ktp.Seat
		best   int
	)
	for i, card := range m.trick {
		if card.Suit == m.trick[0].Suit && card.Rank > best {
			best = card.Rank
			winner = (m.leader + ktp.Seat(i)) % 4
		}
	}
	m.roundPts[winner] += Points(m.trick, m.trickNo, m.deals[m.round].Type)

	taken := proto.Taken{N: m.trickNo, Cards: m.trick, Winner: winner}
	var outs []Out
	for _, seat := range ktp.Seats {
		outs = append(outs, Out{seat, taken})
	}
	m.log = append(m.log, taken)

	m.trick = nil
	m.trickNo++
	m.leader = winner
	m.actor = winner
	m.prompt = true
	if m.trickNo == 14 {
		m.phase = Scoring
		m.log = nil
		m.prompt = false
	}
	return outs
}

// settle broadcasts the round's SCORE and the cumulative TOTAL, then
// moves on to the next round or ends the match
func (m *Match) settle() []Out {
	var (
		outs  []Out
		score proto.Score
		total proto.Total
	)

	for _, seat := range ktp.Seats {
		score.Entries[seat] = proto.ScoreEntry{
			Seat:   seat,
			Points: m.roundPts[seat],
		}
	}
	for _, seat := range ktp.Seats {
		outs = append(outs, Out{seat, score})
	}

	for _, seat := range ktp.Seats {
		m.totalPts[seat] += m.roundPts[seat]
		m.roundPts[seat] = 0
		total.Entries[seat] = proto.ScoreEntry{
			Seat:   seat,
			Points: m.totalPts[seat],
		}
	}
	for _, seat := range ktp.Seats {
		outs = append(outs, Out{seat, total})
	}

	m.round++
	m.phase = Dealing
	if m.round == len(m.deals) {
		m.done = true
	}
	return outs
}
