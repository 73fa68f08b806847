// Card Model Tests
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

package ktp

import (
	"reflect"
	"testing"
)

var suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

func TestCardRoundTrip(t *testing.T) {
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			parsed, err := ParseCard(card.String())
			if err != nil {
				t.Errorf("ParseCard(%q): %s", card, err)
			} else if parsed != card {
				t.Errorf("ParseCard(%q) = %v, want %v",
					card, parsed, card)
			}
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, tok := range []string{
		"2C", "9D", "10H", "JS", "QC", "KD", "AH",
	} {
		card, err := ParseCard(tok)
		if err != nil {
			t.Fatalf("ParseCard(%q): %s", tok, err)
		}
		if card.String() != tok {
			t.Errorf("%q round-tripped to %q", tok, card)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, tok := range []string{
		"", "2", "C", "2X", "1C", "0C", "11C", "10X", "102", "JC2",
		"jC", "2c", "T H",
	} {
		if card, err := ParseCard(tok); err == nil {
			t.Errorf("ParseCard(%q) = %v, want error", tok, card)
		}
	}
}

func TestParseCards(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []Card
	}{
		{"", nil},
		{"2C", []Card{{2, Clubs}}},
		{"10H", []Card{{10, Hearts}}},
		{"2C10HJSAD", []Card{
			{2, Clubs}, {10, Hearts}, {Jack, Spades}, {Ace, Diamonds},
		}},
	} {
		got, err := ParseCards(test.input)
		if err != nil {
			t.Errorf("ParseCards(%q): %s", test.input, err)
		} else if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseCards(%q) = %v, want %v",
				test.input, got, test.want)
		}
	}

	for _, input := range []string{"2", "2C1", "2C10", "2CX", "X2C"} {
		if got, err := ParseCards(input); err == nil {
			t.Errorf("ParseCards(%q) = %v, want error", input, got)
		}
	}
}

func TestHand(t *testing.T) {
	hand := Hand{{2, Clubs}, {10, Hearts}, {Queen, Spades}}

	if !hand.Has(Card{10, Hearts}) {
		t.Error("Has(10H) = false")
	}
	if hand.Has(Card{10, Spades}) {
		t.Error("Has(10S) = true")
	}
	if !hand.HasSuit(Spades) {
		t.Error("HasSuit(S) = false")
	}
	if hand.HasSuit(Diamonds) {
		t.Error("HasSuit(D) = true")
	}

	hand.Remove(Card{10, Hearts})
	want := Hand{{2, Clubs}, {Queen, Spades}}
	if !reflect.DeepEqual(hand, want) {
		t.Errorf("Remove(10H) left %v, want %v", hand, want)
	}

	hand.Remove(Card{10, Hearts})
	if !reflect.DeepEqual(hand, want) {
		t.Errorf("removing a missing card changed the hand: %v", hand)
	}
}

func TestSeat(t *testing.T) {
	if North.Next() != East || East.Next() != South ||
		South.Next() != West || West.Next() != North {
		t.Error("seat successor order broken")
	}

	for _, seat := range Seats {
		got, ok := ParseSeat(seat.Letter())
		if !ok || got != seat {
			t.Errorf("ParseSeat(%q) = %v, %v", seat.Letter(), got, ok)
		}
	}
	if _, ok := ParseSeat('X'); ok {
		t.Error("ParseSeat('X') accepted")
	}

	if South.Offset(East) != 1 || North.Offset(West) != 1 ||
		East.Offset(East) != 0 || East.Offset(South) != 3 {
		t.Error("seat offset arithmetic broken")
	}
}
