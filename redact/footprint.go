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

// Package redact implements the redaction engine (spec §4.5): given an
// OperatorSequence and one or more target regions or predicates, it
// produces a new sequence with the intersecting operators removed.
package redact

import (
	pdf "github.com/marctjones/pdfe"
	"github.com/marctjones/pdfe/content"
	"github.com/marctjones/pdfe/graphics"
)

// XObjectResolver resolves a Do operator's XObject name to its /BBox, in
// the XObject's own form space. Apply transforms the box by the CTM in
// effect at the Do operator (spec §4.5). A nil resolver, or one reporting
// ok=false, makes every Do operator non-intersecting (documented hazard).
type XObjectResolver func(name pdf.Name) (bbox pdf.Rectangle, ok bool)

// footprints holds, per operator index, its redaction footprint and (for
// painting operators) the indices of the path-construction operators that
// belong exclusively to it.
type footprints struct {
	rects       map[int]pdf.Rectangle
	pathOpsFor  map[int][]int // painting-operator index -> its path-construction operator indices
	letters     []graphics.Letter
	diagnostics []pdf.Diagnostic
}

// computeFootprints runs a single pass over seq, tracking the CTM (via a
// graphics.Registry/State, reusing the same handler logic the text state
// machine uses) and the current path under construction, to compute the
// footprint of every operator capable of intersecting a region (spec
// §4.5).
func computeFootprints(seq *content.OperatorSequence, resolveFont func(pdf.Name) (pdf.FontMetrics, bool), resolveXObject XObjectResolver) *footprints {
	fp := &footprints{
		rects:      make(map[int]pdf.Rectangle),
		pathOpsFor: make(map[int][]int),
	}

	reg := graphics.NewRegistry()
	state := graphics.NewState()
	state.ResolveFont = resolveFont

	var pathPoints [][2]float64
	var pathOpIndices []int
	xobjectWarned := false

	for i, op := range seq.Operators {
		switch op.Category {
		case content.CategoryPathConstruction:
			pathPoints = append(pathPoints, pathPointsOf(op)...)
			pathOpIndices = append(pathOpIndices, i)

		case content.CategoryPathPainting:
			if len(pathPoints) > 0 {
				fp.rects[i] = boundingBox(pathPoints, state.CTM)
				fp.pathOpsFor[i] = pathOpIndices
			}
			pathPoints = nil
			pathOpIndices = nil

		case content.CategoryXObject:
			if op.Name == "Do" && len(op.Operands) > 0 {
				name, _ := op.Operands[0].(pdf.Name)
				if resolveXObject != nil {
					if box, ok := resolveXObject(name); ok {
						fp.rects[i] = box.Transform(state.CTM)
						break
					}
				}
				if !xobjectWarned {
					fp.diagnostics = append(fp.diagnostics, pdf.Diagnostic{
						Severity: pdf.SeverityWarning,
						Offset:   op.StreamOffset,
						Kind:     "XObjectBBoxUnavailable",
						Message:  "XObject bounding box unavailable; Do operators are treated as non-intersecting",
					})
					xobjectWarned = true
				}
			}
		}

		if h := reg.Lookup(op.Name); h != nil {
			var letters []graphics.Letter
			h(state, op, i, &letters)
			if len(letters) > 0 {
				var rect pdf.Rectangle
				for _, l := range letters {
					rect = rect.Union(l.GlyphRect)
				}
				fp.rects[i] = rect
				fp.letters = append(fp.letters, letters...)
			}
		}
	}

	fp.diagnostics = append(fp.diagnostics, state.Diagnostics...)
	return fp
}

// pathPointsOf extracts the control/end points a path-construction
// operator contributes, in the coordinate space the operands are written
// in (user space at CTM-application time).
func pathPointsOf(op content.Operator) [][2]float64 {
	nums := make([]float64, 0, len(op.Operands))
	for _, operand := range op.Operands {
		if n, ok := operand.AsNumber(); ok {
			nums = append(nums, n)
		}
	}
	var pts [][2]float64
	switch op.Name {
	case "m", "l":
		if len(nums) >= 2 {
			pts = append(pts, [2]float64{nums[0], nums[1]})
		}
	case "c":
		for i := 0; i+1 < len(nums) && i < 6; i += 2 {
			pts = append(pts, [2]float64{nums[i], nums[i+1]})
		}
	case "v", "y":
		for i := 0; i+1 < len(nums) && i < 4; i += 2 {
			pts = append(pts, [2]float64{nums[i], nums[i+1]})
		}
	case "re":
		if len(nums) >= 4 {
			x, y, w, h := nums[0], nums[1], nums[2], nums[3]
			pts = append(pts,
				[2]float64{x, y}, [2]float64{x + w, y},
				[2]float64{x + w, y + h}, [2]float64{x, y + h},
			)
		}
	case "h":
		// closepath adds no new point.
	}
	return pts
}

// boundingBox transforms points by m and returns their axis-aligned
// bounding rectangle.
func boundingBox(points [][2]float64, m pdf.Matrix) pdf.Rectangle {
	if len(points) == 0 {
		return pdf.Rectangle{}
	}
	x0, y0 := m.Apply(points[0][0], points[0][1])
	out := pdf.Rectangle{Left: x0, Right: x0, Bottom: y0, Top: y0}
	for _, p := range points[1:] {
		x, y := m.Apply(p[0], p[1])
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
