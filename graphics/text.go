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

package graphics

import (
	pdf "github.com/marctjones/pdfe"
	"github.com/marctjones/pdfe/content"
)

// missingGlyphWidthFraction is the fallback advance width (as a fraction of
// font size) used when no font metrics are available for the current font
// (spec §4.8, and the Open Question in spec §9 resolved in DESIGN.md).
const missingGlyphWidthFraction = 0.5

// Letter is one decoded glyph drawn by a text-showing operator, together
// with its page-space bounding box (spec §3). Mode-3 (invisible) text
// still produces Letters: this is load-bearing for redact_text to find and
// remove invisible-but-extractable text (spec §4.4).
type Letter struct {
	Value               string
	GlyphRect           pdf.Rectangle
	TextRenderingMode   int
	SourceOperatorIndex int
}

// showString decodes raw (the bytes of one Tj/TJ/'/" string operand),
// advances the text matrix glyph by glyph, and returns one Letter per
// decoded byte (spec §4.4). Simple single-byte fonts are assumed,
// consistent with the FontMetrics contract in spec §6.
func showString(s *State, raw []byte, opIndex int) []Letter {
	metrics, ok := resolveMetrics(s)
	if !ok {
		s.Warn(pdf.Diagnostic{
			Severity: pdf.SeverityWarning,
			Offset:   -1,
			Kind:     "MissingFontResource",
			Message:  (&pdf.MissingFontResource{Name: string(s.FontName)}).Error(),
		})
	}

	th := s.HorizontalScaling / 100
	letters := make([]Letter, 0, len(raw))
	for _, b := range raw {
		w := glyphWidth(metrics, ok, b, s.FontSize)
		space := b == ' '
		wordSpacing := 0.0
		if space {
			wordSpacing = s.WordSpacing
		}
		tx := (w + s.CharacterSpacing + wordSpacing) * th

		glyphBox := glyphBBox(metrics, ok, b, s.FontSize)
		glyphBox.Bottom += s.TextRise
		glyphBox.Top += s.TextRise

		transform := s.RenderingMatrix()
		letters = append(letters, Letter{
			Value:               string(decodeRune(metrics, ok, b)),
			GlyphRect:           glyphBox.Transform(transform),
			TextRenderingMode:   s.TextRenderingMode,
			SourceOperatorIndex: opIndex,
		})

		s.TextMatrix = pdf.Translate(tx, 0).Mul(s.TextMatrix)
	}
	return letters
}

func resolveMetrics(s *State) (pdf.FontMetrics, bool) {
	if s.ResolveFont == nil {
		return pdf.MissingMetrics, false
	}
	return s.ResolveFont(s.FontName)
}

// glyphWidth returns the advance width in text-space units (already scaled
// by font size and divided by 1000), or the spec §4.8 fallback when font
// metrics are unavailable.
func glyphWidth(metrics pdf.FontMetrics, ok bool, b byte, fontSize float64) float64 {
	if !ok {
		return missingGlyphWidthFraction * fontSize
	}
	w, present := metrics.Widths[b]
	if !present {
		w = metrics.DefaultWidth
	}
	return (w / 1000) * fontSize
}

// glyphBBox returns the glyph's bounding box in text space, before the CTM
// and text matrix are applied (spec §4.4): the font's overall bbox when
// available, else the approximation [0, descent, w*s/1000, ascent].
func glyphBBox(metrics pdf.FontMetrics, ok bool, b byte, fontSize float64) pdf.Rectangle {
	w := glyphWidth(metrics, ok, b, fontSize)
	if ok && !metrics.FontBBox.IsZero() {
		return pdf.Rectangle{
			Left:   metrics.FontBBox.Left / 1000 * fontSize,
			Right:  metrics.FontBBox.Right / 1000 * fontSize,
			Bottom: metrics.FontBBox.Bottom / 1000 * fontSize,
			Top:    metrics.FontBBox.Top / 1000 * fontSize,
		}
	}
	ascent, descent := fontSize*0.8, -fontSize*0.2
	if ok {
		ascent = metrics.Ascent / 1000 * fontSize
		descent = metrics.Descent / 1000 * fontSize
	}
	return pdf.Rectangle{Left: 0, Right: w, Bottom: descent, Top: ascent}
}

func decodeRune(metrics pdf.FontMetrics, ok bool, b byte) rune {
	if ok && metrics.Encoding != nil {
		if r, present := metrics.Encoding[b]; present {
			return r
		}
	}
	return content.DecodeByte(b)
}
