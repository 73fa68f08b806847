// Shared logging
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
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

var Debug = log.New(io.Discard, "[debug] ", log.Ltime|log.Lshortfile|log.Lmicroseconds)

// Wire reports a protocol message on standard output.  FROM is the
// sending endpoint, TO the receiving one, MSG the message without its
// frame delimiter, which is reproduced as on the wire.
func Wire(from, to fmt.Stringer, msg string) {
	stamp := time.Now().Format("2006-01-02T15:04:05.000")
	fmt.Fprintf(os.Stdout, "[%s,%s,%s] %s\r\n", from, to, stamp, msg)
}
