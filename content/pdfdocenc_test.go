// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package content

import "testing"

func TestDecodeByteASCII(t *testing.T) {
	for _, b := range []byte("Hello, World!") {
		if r := DecodeByte(b); r != rune(b) {
			t.Errorf("DecodeByte(%q) = %q, want %q", b, r, rune(b))
		}
	}
}

func TestDecodeByteWindows1252Extended(t *testing.T) {
	// 0x93 is the left double-quotation-mark in Windows-1252, distinct from
	// its ISO-8859-1 codepoint (a control character there).
	if r := DecodeByte(0x93); r != '“' {
		t.Errorf("DecodeByte(0x93) = %q, want left double quote", r)
	}
}
