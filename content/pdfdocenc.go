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

import "golang.org/x/text/encoding/charmap"

// DecodeByte maps a single content-stream string byte to a Unicode rune
// using the Windows-1252 code page, the fallback this package uses when a
// font resource supplies no byte-to-Unicode Encoding table (spec §6, §4.8).
// This only approximates PDFDocEncoding/WinAnsiEncoding for the 8-bit
// Latin range; a font's own Encoding entry always takes precedence when
// present, so this path is only exercised for the boundary case of a
// missing or partial encoding table.
func DecodeByte(b byte) rune {
	r := charmap.Windows1252.DecodeByte(b)
	if r == 0 && b != 0 {
		return rune(b)
	}
	return r
}
