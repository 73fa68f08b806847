// Round Scoring
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

import ktp "go-ktp"

// Points returns the points the winner of trick number N collects
// under round type TYP.  Type 7 combines the effects of types 1
// through 6.
func Points(trick []ktp.Card, n, typ int) int {
	points := 0

	if typ == 1 || typ == 7 {
		points++
	}
	if typ == 2 || typ == 7 {
		for _, c := range trick {
			if c.Suit == ktp.Hearts {
				points++
			}
		}
	}
	if typ == 3 || typ == 7 {
		for _, c := range trick {
			if c.Rank == ktp.Queen {
				points += 5
			}
		}
	}
	if typ == 4 || typ == 7 {
		for _, c := range trick {
			if c.Rank == ktp.Jack || c.Rank == ktp.King {
				points += 2
			}
		}
	}
	if typ == 5 || typ == 7 {
		for _, c := range trick {
			if c.Rank == ktp.King && c.Suit == ktp.Hearts {
				points += 18
			}
		}
	}
	if typ == 6 || typ == 7 {
		if n == 7 || n == 13 {
			points += 10
		}
	}

	return points
}
