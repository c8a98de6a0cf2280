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

package redact

import (
	"strings"

	pdf "github.com/marctjones/pdfe"
	"github.com/marctjones/pdfe/content"
	"github.com/marctjones/pdfe/graphics"
)

// balanceExemptNames carries zero operands, so the "replace the operand
// payload with an empty equivalent" fallback of spec §4.5 degenerates to
// "leave the operator in place" for these four names: there is no payload
// to empty. Category- and area-based removal therefore never targets
// them, preserving BT/ET and q/Q balance by construction rather than by a
// post-hoc repair pass.
var balanceExemptNames = map[string]bool{"BT": true, "ET": true, "q": true, "Q": true}

// LetterPredicate filters decoded glyphs for redact_letters.
type LetterPredicate func(graphics.Letter) bool

// Builder accumulates redaction requests before a single Apply() pass
// computes and removes their union (spec §4.5; batching per SPEC_FULL
// feature 2).
type Builder struct {
	areas          []pdf.Rectangle
	textQueries    []string
	letterPreds    []LetterPredicate
	categories     []content.Category
	allText        bool
	markers        bool
	markerR        float64
	markerG        float64
	markerB        float64
	resolveFont    func(pdf.Name) (pdf.FontMetrics, bool)
	resolveXObject XObjectResolver
}

// NewBuilder returns an empty Builder. resolveFont supplies font metrics
// for glyph-width computation (spec §6); it may be nil, in which case all
// glyph widths fall back to the spec §4.8 approximation.
func NewBuilder(resolveFont func(pdf.Name) (pdf.FontMetrics, bool)) *Builder {
	return &Builder{resolveFont: resolveFont}
}

// WithXObjectResolver supplies the /BBox lookup used for Do operator
// footprints (spec §4.5). Without one, Do operators never intersect.
func (b *Builder) WithXObjectResolver(r XObjectResolver) *Builder {
	b.resolveXObject = r
	return b
}

// RedactArea removes every operator whose footprint intersects rect.
func (b *Builder) RedactArea(rect pdf.Rectangle) *Builder {
	b.areas = append(b.areas, rect)
	return b
}

// RedactText locates letter runs whose concatenated values contain
// substring and redacts the area they occupy.
func (b *Builder) RedactText(substring string) *Builder {
	if substring != "" {
		b.textQueries = append(b.textQueries, substring)
	}
	return b
}

// RedactLetters removes operators touching any letter matching pred.
func (b *Builder) RedactLetters(pred LetterPredicate) *Builder {
	b.letterPreds = append(b.letterPreds, pred)
	return b
}

// RedactAllText removes every operator of category TextShowing.
func (b *Builder) RedactAllText() *Builder {
	b.allText = true
	return b
}

// RedactCategory removes every operator of the given category.
func (b *Builder) RedactCategory(cat content.Category) *Builder {
	b.categories = append(b.categories, cat)
	return b
}

// WithMarkers enables (or disables) appending an opaque overlay fill after
// each redacted region. Markers never substitute for removal (spec §4.5);
// enabling this without also removing content is a masking anti-pattern
// the caller has opted into explicitly.
func (b *Builder) WithMarkers(enabled bool) *Builder {
	b.markers = enabled
	return b
}

// MarkerColor sets the RGB fill color (0..1 each channel) used for marker
// overlays.
func (b *Builder) MarkerColor(r, g, bl float64) *Builder {
	b.markerR, b.markerG, b.markerB = r, g, bl
	return b
}

// Result is the outcome of Apply.
type Result struct {
	Sequence    *content.OperatorSequence
	Diagnostics []pdf.Diagnostic
}

// Apply computes the union of every requested removal and returns the
// resulting sequence (spec §4.5). The original seq is not modified.
func (b *Builder) Apply(seq *content.OperatorSequence) Result {
	fp := computeFootprints(seq, b.resolveFont, b.resolveXObject)
	diags := append([]pdf.Diagnostic(nil), fp.diagnostics...)

	// matchedLetter flags, per letter, whether a redact_text/redact_letters
	// request matched it. An operator is always removed as a whole (spec
	// §4.5 works at operator granularity, not sub-string granularity), so
	// a letter-level match that covers only part of an operator's text
	// still redacts the rest of that operator's text as a side effect;
	// that is reported below rather than done silently.
	matchedLetter := make([]bool, len(fp.letters))

	targets := append([]pdf.Rectangle(nil), b.areas...)
	for _, q := range b.textQueries {
		for _, m := range matchLetterRuns(fp.letters, q) {
			targets = append(targets, m.rect)
			for _, idx := range m.letterIndices {
				matchedLetter[idx] = true
			}
		}
	}
	for _, pred := range b.letterPreds {
		for j, l := range fp.letters {
			if pred(l) {
				targets = append(targets, l.GlyphRect)
				matchedLetter[j] = true
			}
		}
	}

	matchedCount := make(map[int]int)
	letterTotal := make(map[int]int)
	for j, l := range fp.letters {
		letterTotal[l.SourceOperatorIndex]++
		if matchedLetter[j] {
			matchedCount[l.SourceOperatorIndex]++
		}
	}

	categorySet := make(map[content.Category]bool, len(b.categories))
	for _, c := range b.categories {
		categorySet[c] = true
	}

	remove := make(map[int]bool)
	for i, op := range seq.Operators {
		if balanceExemptNames[op.Name] {
			continue
		}
		if b.allText && op.Category == content.CategoryTextShowing {
			remove[i] = true
			continue
		}
		if categorySet[op.Category] {
			remove[i] = true
			continue
		}
		rect, ok := fp.rects[i]
		if !ok {
			continue
		}
		for _, t := range targets {
			if rect.Intersects(t) {
				remove[i] = true
				break
			}
		}
	}

	for i, op := range seq.Operators {
		if remove[i] && op.Category == content.CategoryTextShowing &&
			matchedCount[i] > 0 && matchedCount[i] < letterTotal[i] {
			diags = append(diags, pdf.Diagnostic{
				Severity: pdf.SeverityWarning,
				Offset:   op.StreamOffset,
				Kind:     "PartialTextMatchRemovedWhole",
				Message:  "a redact_text/redact_letters match covered only part of this operator's text",
				Reason:   "operators are redacted at whole-operator granularity; the unmatched remainder was removed along with the match",
			})
		}
	}

	// Cascade: a removed painting operator takes its exclusive
	// path-construction operators with it (spec §4.5).
	for i := range remove {
		for _, pathIdx := range fp.pathOpsFor[i] {
			remove[pathIdx] = true
		}
	}

	var out content.OperatorSequence
	for i, op := range seq.Operators {
		if !remove[i] {
			out.Operators = append(out.Operators, op)
			continue
		}
		if marker := b.markerOperators(op, fp.rects[i]); marker != nil {
			out.Operators = append(out.Operators, marker...)
		}
	}

	return Result{Sequence: &out, Diagnostics: diags}
}

// markerOperators returns the marker overlay operators for a removed
// operator's footprint, or nil if markers are disabled or the operator had
// no footprint to mark.
func (b *Builder) markerOperators(removed content.Operator, rect pdf.Rectangle) []content.Operator {
	if !b.markers || rect.IsZero() || rect.IsEmpty() {
		return nil
	}
	w, h := rect.Right-rect.Left, rect.Top-rect.Bottom
	return []content.Operator{
		{Name: "q", Category: content.CategoryGraphicsState},
		{
			Name:     "rg",
			Category: content.CategoryColor,
			Operands: []pdf.Object{pdf.Real(b.markerR), pdf.Real(b.markerG), pdf.Real(b.markerB)},
		},
		{
			Name:     "re",
			Category: content.CategoryPathConstruction,
			Operands: []pdf.Object{pdf.Real(rect.Left), pdf.Real(rect.Bottom), pdf.Real(w), pdf.Real(h)},
		},
		{Name: "f", Category: content.CategoryPathPainting},
		{Name: "Q", Category: content.CategoryGraphicsState},
	}
}

// letterRunMatch is one occurrence of a redact_text query: the union
// rectangle of the letters it spans, and which letter indices (into the
// slice passed to matchLetterRuns) they are.
type letterRunMatch struct {
	rect          pdf.Rectangle
	letterIndices []int
}

// matchLetterRuns finds every (possibly overlapping) occurrence of
// substring in the concatenation of letters' decoded values (spec §4.5:
// "linear scan with restart for overlapping matches").
func matchLetterRuns(letters []graphics.Letter, substring string) []letterRunMatch {
	if len(letters) == 0 || substring == "" {
		return nil
	}

	// Build the concatenated text and a parallel slice mapping each rune
	// back to the letter index it came from.
	var sb strings.Builder
	var owner []int
	for idx, l := range letters {
		for range l.Value {
			owner = append(owner, idx)
		}
		sb.WriteString(l.Value)
	}
	text := sb.String()
	runeLen := len([]rune(substring))

	var out []letterRunMatch
	for start := 0; start+len(substring) <= len(text); start++ {
		if text[start:start+len(substring)] != substring {
			continue
		}
		runeStart := runeIndexOf(text, start)
		if runeStart+runeLen > len(owner) {
			continue
		}
		indices := owner[runeStart : runeStart+runeLen]
		var rect pdf.Rectangle
		for _, ownerIdx := range indices {
			rect = rect.Union(letters[ownerIdx].GlyphRect)
		}
		out = append(out, letterRunMatch{rect: rect, letterIndices: append([]int(nil), indices...)})
	}
	return out
}

// runeIndexOf returns the rune index corresponding to byte offset
// byteOffset within s.
func runeIndexOf(s string, byteOffset int) int {
	count := 0
	for i := range s {
		if i >= byteOffset {
			break
		}
		count++
	}
	return count
}
