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

// Rectangle is an axis-aligned rectangle in page coordinates, normalized
// so that Left <= Right and Bottom <= Top.
type Rectangle struct {
	Left, Bottom, Right, Top float64
}

// NewRectangle normalizes the four corner coordinates into a Rectangle.
func NewRectangle(x0, y0, x1, y1 float64) Rectangle {
	return Rectangle{
		Left:   math.Min(x0, x1),
		Right:  math.Max(x0, x1),
		Bottom: math.Min(y0, y1),
		Top:    math.Max(y0, y1),
	}
}

// IsZero reports whether r is the zero-value rectangle.
func (r Rectangle) IsZero() bool {
	return r.Left == 0 && r.Bottom == 0 && r.Right == 0 && r.Top == 0
}

// IsEmpty reports whether r has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Left >= r.Right || r.Bottom >= r.Top
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	if other.IsZero() {
		return r
	}
	if r.IsZero() {
		return other
	}
	return Rectangle{
		Left:   math.Min(r.Left, other.Left),
		Bottom: math.Min(r.Bottom, other.Bottom),
		Right:  math.Max(r.Right, other.Right),
		Top:    math.Max(r.Top, other.Top),
	}
}

// Intersect returns the overlap of r and other. If the two rectangles do
// not overlap, the result IsEmpty.
func (r Rectangle) Intersect(other Rectangle) Rectangle {
	out := Rectangle{
		Left:   math.Max(r.Left, other.Left),
		Bottom: math.Max(r.Bottom, other.Bottom),
		Right:  math.Min(r.Right, other.Right),
		Top:    math.Min(r.Top, other.Top),
	}
	if out.IsEmpty() {
		return Rectangle{}
	}
	return out
}

// Intersects reports whether r and other share any area. Touching edges
// with zero overlap area do not count as intersecting.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Bottom < other.Top && other.Bottom < r.Top
}

// Contains reports whether the point (x, y) lies within r, inclusive of
// the boundary.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// Corners returns the four corners of r in the order lower-left,
// lower-right, upper-right, upper-left.
func (r Rectangle) Corners() [4][2]float64 {
	return [4][2]float64{
		{r.Left, r.Bottom},
		{r.Right, r.Bottom},
		{r.Right, r.Top},
		{r.Left, r.Top},
	}
}

// Transform maps r through m and returns the axis-aligned bounding box of
// the transformed corners.
func (r Rectangle) Transform(m Matrix) Rectangle {
	corners := r.Corners()
	x0, y0 := m.Apply(corners[0][0], corners[0][1])
	out := Rectangle{Left: x0, Right: x0, Bottom: y0, Top: y0}
	for _, c := range corners[1:] {
		x, y := m.Apply(c[0], c[1])
		if x < out.Left {
			out.Left = x
		}
		if x > out.Right {
			out.Right = x
		}
		if y < out.Bottom {
			out.Bottom = y
		}
		if y > out.Top {
			out.Top = y
		}
	}
	return out
}
