// Round Scoring Tests
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

package game

import (
	"testing"

	ktp "go-ktp"
)

func TestPoints(t *testing.T) {
	var (
		plain = []ktp.Card{
			{Rank: 2, Suit: ktp.Clubs}, {Rank: 5, Suit: ktp.Clubs},
			{Rank: 7, Suit: ktp.Diamonds}, {Rank: 9, Suit: ktp.Spades},
		}
		hearts = []ktp.Card{
			{Rank: 2, Suit: ktp.Hearts}, {Rank: 5, Suit: ktp.Hearts},
			{Rank: 7, Suit: ktp.Hearts}, {Rank: 9, Suit: ktp.Spades},
		}
		court = []ktp.Card{
			{Rank: ktp.Queen, Suit: ktp.Clubs}, {Rank: ktp.Queen, Suit: ktp.Spades},
			{Rank: ktp.Jack, Suit: ktp.Diamonds}, {Rank: ktp.King, Suit: ktp.Hearts},
		}
	)

	for _, test := range []struct {
		name  string
		trick []ktp.Card
		n     int
		typ   int
		want  int
	}{
		{"flat", plain, 1, 1, 1},
		{"no hearts", plain, 1, 2, 0},
		{"three hearts", hearts, 1, 2, 3},
		{"two queens", court, 1, 3, 10},
		{"jack and king", court, 1, 4, 4},
		{"king of hearts", court, 1, 5, 18},
		{"king of hearts absent", hearts, 1, 5, 0},
		{"seventh trick", plain, 7, 6, 10},
		{"thirteenth trick", plain, 13, 6, 10},
		{"eighth trick", plain, 8, 6, 0},
		{"everything", court, 7, 7, 1 + 1 + 10 + 4 + 18 + 10},
		{"everything, plain trick", plain, 2, 7, 1},
	} {
		if got := Points(test.trick, test.n, test.typ); got != test.want {
			t.Errorf("%s: Points = %d, want %d",
				test.name, got, test.want)
		}
	}
}

// the total of a fully played round is fixed by its type
func TestRoundTotals(t *testing.T) {
	for typ, want := range map[int]int{
		1: 13,
		2: 13,
		3: 20,
		4: 16,
		5: 18,
		6: 20,
		7: 13 + 13 + 20 + 16 + 18 + 20,
	} {
		m := New([]ktp.Deal{oneSuitDeal(typ, ktp.West)})
		bindAll(m)
		playRound(t, m)

		total := 0
		for _, pts := range m.totalPts {
			total += pts
		}
		if total != want {
			t.Errorf("type %d distributed %d points, want %d",
				typ, total, want)
		}
	}
}
