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
	"strings"
	"testing"

	pdf "github.com/marctjones/pdfe"
	"github.com/marctjones/pdfe/content"
)

func courierMetrics() pdf.FontMetrics {
	widths := make(map[byte]float64)
	for b := byte(0); b < 255; b++ {
		widths[b] = 600
	}
	return pdf.FontMetrics{
		Widths:       widths,
		DefaultWidth: 600,
		Ascent:       700,
		Descent:      -200,
	}
}

func runLetters(t *testing.T, stream string, metrics pdf.FontMetrics, haveMetrics bool) ([]Letter, *State) {
	t.Helper()
	seq, diags := content.Parse([]byte(stream))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	s := NewState()
	s.ResolveFont = func(name pdf.Name) (pdf.FontMetrics, bool) {
		return metrics, haveMetrics
	}
	r := NewRegistry()
	return r.Run(seq, s), s
}

func lettersToString(letters []Letter) string {
	var b strings.Builder
	for _, l := range letters {
		b.WriteString(l.Value)
	}
	return b.String()
}

func TestRunDecodesSimpleTj(t *testing.T) {
	letters, _ := runLetters(t, "BT /F1 12 Tf 100 700 Td (Hi) Tj ET", courierMetrics(), true)
	if lettersToString(letters) != "Hi" {
		t.Errorf("letters = %q, want %q", lettersToString(letters), "Hi")
	}
	for _, l := range letters {
		if l.GlyphRect.IsZero() {
			t.Errorf("letter %q has a zero glyph rect", l.Value)
		}
	}
}

func TestRunTrClampsRenderingMode(t *testing.T) {
	letters, _ := runLetters(t, "BT 99 Tr /F1 12 Tf (x) Tj ET", courierMetrics(), true)
	if len(letters) != 1 || letters[0].TextRenderingMode != 7 {
		t.Fatalf("letters = %+v, want one letter with mode 7", letters)
	}
}

func TestRunInvisibleModeStillProducesLetters(t *testing.T) {
	letters, _ := runLetters(t, "BT /F1 12 Tf 3 Tr (Secret) Tj ET", courierMetrics(), true)
	if lettersToString(letters) != "Secret" {
		t.Errorf("invisible text did not produce letters: %q", lettersToString(letters))
	}
	for _, l := range letters {
		if l.TextRenderingMode != 3 {
			t.Errorf("mode = %d, want 3", l.TextRenderingMode)
		}
	}
}

func TestRunTJArrayKerning(t *testing.T) {
	letters, state := runLetters(t, `BT /F1 12 Tf [(AB) -250 (CD)] TJ ET`, courierMetrics(), true)
	if lettersToString(letters) != "ABCD" {
		t.Errorf("letters = %q, want ABCD", lettersToString(letters))
	}
	_ = state
}

func TestRunMissingFontFallsBackAndWarns(t *testing.T) {
	letters, state := runLetters(t, "BT /F1 12 Tf (x) Tj ET", pdf.MissingMetrics, false)
	if len(letters) != 1 {
		t.Fatalf("letters = %+v", letters)
	}
	if len(state.Diagnostics) == 0 {
		t.Fatal("expected a MissingFontResource diagnostic")
	}
	if state.Diagnostics[0].Kind != "MissingFontResource" {
		t.Errorf("diagnostic kind = %q", state.Diagnostics[0].Kind)
	}
}

func TestRunTfMissingOperandsTolerated(t *testing.T) {
	seq, _ := content.Parse([]byte("Tf"))
	s := NewState()
	r := NewRegistry()
	r.Run(seq, s) // must not panic
	if s.FontSize != 0 {
		t.Errorf("FontSize = %v, want unchanged 0", s.FontSize)
	}
}

func TestRunQWithoutMatchingQIsTolerated(t *testing.T) {
	seq, _ := content.Parse([]byte("Q Q Q"))
	s := NewState()
	r := NewRegistry()
	r.Run(seq, s) // must not panic, stack underflow tolerated
	if s.StackDepth() != 0 {
		t.Errorf("StackDepth = %d, want 0", s.StackDepth())
	}
}

func TestRunCMPreMultipliesCTM(t *testing.T) {
	seq, _ := content.Parse([]byte("2 0 0 2 0 0 cm 1 0 0 1 10 0 cm"))
	s := NewState()
	r := NewRegistry()
	r.Run(seq, s)
	x, y := s.CTM.Apply(1, 1)
	if x != 22 || y != 2 {
		t.Errorf("CTM.Apply(1,1) = (%v, %v), want (22, 2)", x, y)
	}
}

func TestRunLastRegistrationWins(t *testing.T) {
	seq, _ := content.Parse([]byte("q"))
	s := NewState()
	r := NewRegistry()
	called := false
	r.Register("q", func(st *State, op content.Operator, index int, _ *[]Letter) {
		called = true
	})
	r.Run(seq, s)
	if !called {
		t.Error("custom handler registered after defaults should win")
	}
	if s.StackDepth() != 0 {
		t.Error("the overridden default q handler should not have run")
	}
}
