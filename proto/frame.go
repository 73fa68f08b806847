// Message Framing
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

import "bytes"

// ScanCRLF is a bufio.SplitFunc framing the byte stream on CR+LF
// pairs.  A lone CR stays inside the message.  Bytes after the last
// complete frame are discarded at end of stream.
func ScanCRLF(data []byte, atEOF bool) (int, []byte, error) {
	if i := bytes.Index(data, []byte("\r\n")); i >= 0 {
		return i + 2, data[:i], nil
	}
	return 0, nil, nil
}
