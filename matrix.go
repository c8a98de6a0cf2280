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

import "math"

// Matrix represents the six coefficients (a, b, c, d, e, f) of a PDF
// transformation matrix
//
//	[ a b 0 ]
//	[ c d 0 ]
//	[ e f 1 ]
//
// Matrix values are composed left-to-right: for a point represented as a
// row vector, applying M1 then M2 is written M1.Mul(M2), matching the
// order PDF 32000-1 section 8.3.4 uses for "cm" concatenation (the new CTM
// is the newly supplied matrix composed with the old CTM applied
// afterwards).
type Matrix [6]float64

// IdentityMatrix is the identity transform.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns the matrix for a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{1, 0, 0, 1, dx, dy}
}

// Scale returns the matrix for scaling by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns the matrix for a counter-clockwise rotation by angle
// radians.
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Mul returns the composition of A followed by B, i.e. the matrix that
// applies A to a point and then applies B to the result.
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

// Apply transforms the point (x, y) by the matrix.
func (a Matrix) Apply(x, y float64) (float64, float64) {
	return a[0]*x + a[2]*y + a[4], a[1]*x + a[3]*y + a[5]
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix) Det() float64 {
	return a[0]*a[3] - a[1]*a[2]
}

// Inv returns the inverse matrix. If the matrix is singular, the zero
// matrix is returned.
func (a Matrix) Inv() Matrix {
	det := a.Det()
	if det == 0 {
		return Matrix{}
	}
	return Matrix{
		a[3] / det,
		-a[1] / det,
		-a[2] / det,
		a[0] / det,
		(a[2]*a[5] - a[3]*a[4]) / det,
		(a[1]*a[4] - a[0]*a[5]) / det,
	}
}
