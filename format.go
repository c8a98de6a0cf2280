// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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

package pdf

import (
	"fmt"
	"strconv"
)

// formatReal renders a real number the way spec §4.6 requires: up to 6
// significant digits, trailing zeros and a trailing decimal point
// stripped, -0 normalized to 0. No exponent notation is used.
func formatReal(f float64) string {
	if f == 0 {
		return "0"
	}
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'e', 5, 64), 64)
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if s == "-0" {
		s = "0"
	}
	return s
}

// formatLiteralString renders b as a balanced-parenthesis literal string,
// escaping '(', ')' and '\\' and emitting non-printable bytes as \ddd
// octal escapes (spec §4.6).
func formatLiteralString(b []byte) []byte {
	out := make([]byte, 0, len(b)+2)
	out = append(out, '(')
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			out = append(out, '\\', c)
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\t':
			out = append(out, '\\', 't')
		case '\b':
			out = append(out, '\\', 'b')
		case '\f':
			out = append(out, '\\', 'f')
		default:
			if c < 0x20 || c >= 0x7f {
				out = append(out, []byte(fmt.Sprintf("\\%03o", c))...)
			} else {
				out = append(out, c)
			}
		}
	}
	out = append(out, ')')
	return out
}

// formatHexString renders b as "<...>" using uppercase hex digits.
func formatHexString(b []byte) []byte {
	out := make([]byte, 0, len(b)*2+2)
	out = append(out, '<')
	const digits = "0123456789ABCDEF"
	for _, c := range b {
		out = append(out, digits[c>>4], digits[c&0xf])
	}
	out = append(out, '>')
	return out
}
