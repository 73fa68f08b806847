// Wire Message Parsing
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

package proto

import (
	"errors"
	"fmt"
	"strings"

	ktp "go-ktp"
)

// ErrMalformed is returned for any input outside the wire grammar
var ErrMalformed = errors.New("malformed message")

// Parse converts one framed line, without its CR+LF delimiter, into a
// tagged message.  The grammar is anchored and case-sensitive; any
// deviation yields ErrMalformed.
func Parse(line string) (Message, error) {
	switch {
	case strings.HasPrefix(line, "IAM"):
		return parseIam(line[3:])
	case strings.HasPrefix(line, "BUSY"):
		return parseBusy(line[4:])
	case strings.HasPrefix(line, "DEAL"):
		return parseDeal(line[4:])
	case strings.HasPrefix(line, "TRICK"):
		return parseTrick(line[5:])
	case strings.HasPrefix(line, "TAKEN"):
		return parseTaken(line[5:])
	case strings.HasPrefix(line, "WRONG"):
		return parseWrong(line[5:])
	case strings.HasPrefix(line, "SCORE"):
		entries, err := parseEntries(line[5:])
		if err != nil {
			return nil, err
		}
		return Score{entries}, nil
	case strings.HasPrefix(line, "TOTAL"):
		entries, err := parseEntries(line[5:])
		if err != nil {
			return nil, err
		}
		return Total{entries}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrMalformed, line)
	}
}

func parseIam(rest string) (Message, error) {
	if len(rest) != 1 {
		return nil, ErrMalformed
	}
	seat, ok := ktp.ParseSeat(rest[0])
	if !ok {
		return nil, ErrMalformed
	}
	return Iam{seat}, nil
}

func parseBusy(rest string) (Message, error) {
	if len(rest) < 1 || len(rest) > 4 {
		return nil, ErrMalformed
	}
	var seats []ktp.Seat
	for i := 0; i < len(rest); i++ {
		seat, ok := ktp.ParseSeat(rest[i])
		if !ok {
			return nil, ErrMalformed
		}
		seats = append(seats, seat)
	}
	return Busy{seats}, nil
}

func parseDeal(rest string) (Message, error) {
	if len(rest) < 2 || rest[0] < '1' || rest[0] > '7' {
		return nil, ErrMalformed
	}
	lead, ok := ktp.ParseSeat(rest[1])
	if !ok {
		return nil, ErrMalformed
	}
	cards, err := ktp.ParseCards(rest[2:])
	if err != nil || len(cards) != 13 {
		return nil, ErrMalformed
	}
	return Deal{Type: int(rest[0] - '0'), Lead: lead, Cards: cards}, nil
}

// splitTrickNo destructs a trick number in 1..13 followed by TAIL.
// "1" followed by a digit is ambiguous ("TRICK110C" is trick 1, card
// 10C); a single-digit reading is preferred whenever OK accepts the
// resulting tail, matching the reference behaviour of the protocol.
func splitTrickNo(rest string, ok func(tail string) bool) (int, string, bool) {
	if len(rest) < 1 || rest[0] < '1' || rest[0] > '9' {
		return 0, "", false
	}
	if ok(rest[1:]) {
		return int(rest[0] - '0'), rest[1:], true
	}
	if rest[0] == '1' && len(rest) >= 2 && rest[1] >= '0' && rest[1] <= '3' &&
		ok(rest[2:]) {
		return 10 + int(rest[1]-'0'), rest[2:], true
	}
	return 0, "", false
}

func parseTrick(rest string) (Message, error) {
	n, tail, ok := splitTrickNo(rest, func(tail string) bool {
		cards, err := ktp.ParseCards(tail)
		return err == nil && len(cards) <= 3
	})
	if !ok {
		return nil, ErrMalformed
	}
	cards, err := ktp.ParseCards(tail)
	if err != nil {
		return nil, ErrMalformed
	}
	return Trick{N: n, Cards: cards}, nil
}

func parseTaken(rest string) (Message, error) {
	valid := func(tail string) bool {
		if len(tail) < 1 {
			return false
		}
		if _, ok := ktp.ParseSeat(tail[len(tail)-1]); !ok {
			return false
		}
		cards, err := ktp.ParseCards(tail[:len(tail)-1])
		return err == nil && len(cards) == 4
	}
	n, tail, ok := splitTrickNo(rest, valid)
	if !ok {
		return nil, ErrMalformed
	}
	winner, _ := ktp.ParseSeat(tail[len(tail)-1])
	cards, _ := ktp.ParseCards(tail[:len(tail)-1])
	return Taken{N: n, Cards: cards, Winner: winner}, nil
}

func parseWrong(rest string) (Message, error) {
	n, tail, ok := splitTrickNo(rest, func(tail string) bool {
		return tail == ""
	})
	if !ok || tail != "" {
		return nil, ErrMalformed
	}
	return Wrong{n}, nil
}

func parseEntries(rest string) ([4]ScoreEntry, error) {
	var entries [4]ScoreEntry

	for i := 0; i < 4; i++ {
		if len(rest) == 0 {
			return entries, ErrMalformed
		}
		seat, ok := ktp.ParseSeat(rest[0])
		if !ok {
			return entries, ErrMalformed
		}
		rest = rest[1:]

		points, digits := 0, 0
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			points = points*10 + int(rest[0]-'0')
			rest = rest[1:]
			digits++
		}
		if digits == 0 {
			return entries, ErrMalformed
		}
		entries[i] = ScoreEntry{Seat: seat, Points: points}
	}
	if rest != "" {
		return entries, ErrMalformed
	}
	return entries, nil
}
