// Automatic Player
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

import ktp "go-ktp"

// choose picks the card to answer the pending prompt with: the first
// card following the led suit, or failing that the first card held
func (s *Session) choose() ktp.Card {
	if len(s.table) > 0 {
		for _, c := range s.hand {
			if c.Suit == s.table[0].Suit {
				return c
			}
		}
	}
	return s.hand[0]
}
