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

import "testing"

func TestRectangleIntersects(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(5, 5, 15, 15)
	c := NewRectangle(20, 20, 30, 30)

	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}

func TestRectangleIntersectDisjointIsEmpty(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	c := NewRectangle(20, 20, 30, 30)
	if out := a.Intersect(c); !out.IsEmpty() {
		t.Errorf("Intersect of disjoint rectangles = %v, want empty", out)
	}
}

func TestRectangleUnion(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(5, 5, 20, 20)
	got := a.Union(b)
	want := Rectangle{Left: 0, Bottom: 0, Right: 20, Top: 20}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestRectangleTransform(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	got := r.Transform(Translate(5, 5))
	want := Rectangle{Left: 5, Bottom: 5, Right: 15, Top: 15}
	if got != want {
		t.Errorf("Transform = %+v, want %+v", got, want)
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	if !r.Contains(5, 5) {
		t.Error("(5,5) should be contained")
	}
	if r.Contains(15, 5) {
		t.Error("(15,5) should not be contained")
	}
}
