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

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testMatrices = []Matrix{
	IdentityMatrix,
	{2, 3, 4, 5, 6, 7},
	Translate(-0.5, 0.5),
	Translate(1, 2),
	Scale(0.5, 0.5),
	Scale(2, 1),
	Scale(-1, -1),
	Rotate(0.1),
	Rotate(math.Pi / 2),
}

func TestIdentityMatrix(t *testing.T) {
	for i, a := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			b := a.Mul(IdentityMatrix)
			if d := cmp.Diff(a, b); d != "" {
				t.Error(d)
			}
			c := IdentityMatrix.Mul(a)
			if d := cmp.Diff(a, c); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixInverse(t *testing.T) {
	for i, a := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			inv := a.Inv()
			b := inv.Mul(a)
			if d := cmp.Diff(IdentityMatrix, b, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
			c := a.Mul(inv)
			if d := cmp.Diff(IdentityMatrix, c, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixApplyTranslate(t *testing.T) {
	m := Translate(3, 4)
	x, y := m.Apply(1, 1)
	if x != 4 || y != 5 {
		t.Errorf("Apply = (%v, %v), want (4, 5)", x, y)
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// cm concatenation order: applying Translate then Scale should scale
	// the translated point, matching PDF's "new CTM = M x old CTM" rule
	// as used by content handlers (cm pre-multiplies the CTM).
	m := Translate(1, 0).Mul(Scale(2, 2))
	x, y := m.Apply(0, 0)
	if x != 2 || y != 0 {
		t.Errorf("Apply = (%v, %v), want (2, 0)", x, y)
	}
}
