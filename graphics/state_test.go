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
	"testing"

	pdf "github.com/marctjones/pdfe"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.TextMatrix != pdf.IdentityMatrix || s.TextLineMatrix != pdf.IdentityMatrix {
		t.Error("text matrices should default to identity")
	}
	if s.CTM != pdf.IdentityMatrix {
		t.Error("CTM should default to identity")
	}
	if s.HorizontalScaling != 100 {
		t.Errorf("HorizontalScaling = %v, want 100", s.HorizontalScaling)
	}
	if s.FontSize != 0 || s.TextRenderingMode != 0 {
		t.Error("FontSize and TextRenderingMode should default to 0")
	}
}

func TestStatePushPopRestoresSnapshot(t *testing.T) {
	s := NewState()
	s.CTM = pdf.Translate(5, 5)
	s.FontSize = 12
	s.Push()

	s.CTM = pdf.Translate(10, 10)
	s.FontSize = 24

	s.Pop()
	if s.CTM != pdf.Translate(5, 5) {
		t.Errorf("CTM after Pop = %v, want Translate(5,5)", s.CTM)
	}
	if s.FontSize != 12 {
		t.Errorf("FontSize after Pop = %v, want 12", s.FontSize)
	}
}

func TestStatePopOnEmptyStackIsNoOp(t *testing.T) {
	s := NewState()
	s.CTM = pdf.Translate(1, 1)
	s.Pop() // must not panic
	if s.CTM != pdf.Translate(1, 1) {
		t.Errorf("CTM changed after Pop on empty stack: %v", s.CTM)
	}
}

func TestStateAdvanceLine(t *testing.T) {
	s := NewState()
	s.AdvanceLine(10, 20)
	want := pdf.Translate(10, 20)
	if s.TextLineMatrix != want || s.TextMatrix != want {
		t.Errorf("after AdvanceLine(10,20): Tlm=%v Tm=%v, want both %v", s.TextLineMatrix, s.TextMatrix, want)
	}

	s.AdvanceLine(1, 2)
	want2 := pdf.Translate(1, 2).Mul(want)
	if s.TextLineMatrix != want2 {
		t.Errorf("second AdvanceLine did not compose with the prior line matrix: got %v, want %v", s.TextLineMatrix, want2)
	}
}

func TestResetTextMatrices(t *testing.T) {
	s := NewState()
	s.AdvanceLine(5, 5)
	s.ResetTextMatrices()
	if s.TextMatrix != pdf.IdentityMatrix || s.TextLineMatrix != pdf.IdentityMatrix {
		t.Error("ResetTextMatrices should reset both matrices to identity")
	}
}
