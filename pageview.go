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

package pdf

// FontMetrics supplies the per-glyph information the text state machine
// needs to turn decoded bytes into Unicode and page-space bounding boxes,
// without this package ever parsing a font program itself (spec §1, §6).
type FontMetrics struct {
	// Widths maps a byte code (for simple, single-byte encoded fonts) to
	// its advance width in glyph-space units (1000 units per em).
	Widths map[byte]float64

	// DefaultWidth is used for codes absent from Widths.
	DefaultWidth float64

	// FontBBox is the font's overall bounding box in glyph-space units,
	// used as the per-glyph box approximation when no finer-grained glyph
	// bbox is available (spec §4.4).
	FontBBox Rectangle

	// Ascent and Descent bound the font's glyph-space vertical extent and
	// are used to build the approximate glyph rectangle
	// [0, descent, w, ascent] from spec §4.4 when FontBBox is zero.
	Ascent, Descent float64

	// Encoding maps a byte code to a Unicode rune for simple fonts. A nil
	// or partial Encoding falls back to the latin-range approximation
	// documented in the content package.
	Encoding map[byte]rune
}

// MissingMetrics is returned by PageView.Font when no resource is found
// for the requested name; the caller (the text state machine) falls back
// to the approximation in spec §4.8 and records a MissingFontResource
// diagnostic.
var MissingMetrics = FontMetrics{}

// PageView is the interface the surrounding document layer implements to
// hand a page's content to this package, and to receive the redacted
// content back. Cross-reference traversal, filter decoding, and
// encryption all happen on the far side of this interface (spec §1, §6).
type PageView interface {
	// ContentBytes returns the page's content-stream bytes, already
	// decompressed and decrypted, with multiple content-stream parts
	// already concatenated.
	ContentBytes() ([]byte, error)

	// SetContentBytes replaces the page's content stream.
	SetContentBytes([]byte) error

	// Font resolves a resource name (as used by a Tf operator) to font
	// metrics. ok is false if the resource is absent.
	Font(name Name) (metrics FontMetrics, ok bool)

	// MediaBox and CropBox return the page's boundary rectangles.
	MediaBox() Rectangle
	CropBox() Rectangle

	// UserUnit returns the page's /UserUnit value, or 1.0 if unset.
	UserUnit() float64
}
