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

// Package graphics evolves the content-stream handler registry and the
// text-rendering state machine: the transient state that the text-showing
// operators read and update (text matrix, text line matrix, CTM, font,
// spacings, rendering mode), and the per-glyph bounding-box computation
// that turns decoded characters into Letters.
package graphics

import pdf "github.com/marctjones/pdfe"

// GraphicsSnapshot is the part of ParserState saved by q and restored by Q.
// It includes the CTM and the text-adjacent parameters that persist across
// text objects, matching spec §3's "push full snapshot including CTM and
// text-adjacent state".
type GraphicsSnapshot struct {
	CTM pdf.Matrix

	FontName          pdf.Name
	FontSize          float64
	CharacterSpacing  float64
	WordSpacing       float64
	HorizontalScaling float64
	TextLeading       float64
	TextRise          float64
	TextRenderingMode int
}

// State is the transient ParserState of spec §3: the mutable state a
// content-stream pass threads through every operator handler. A State is
// owned by exactly one parse/redact pass; nothing aliases it (spec §3
// "Lifecycle").
type State struct {
	InTextObject bool

	TextMatrix     pdf.Matrix
	TextLineMatrix pdf.Matrix

	GraphicsSnapshot
	stack []GraphicsSnapshot

	// ResolveFont looks up font metrics by resource name, backed by the
	// document layer's PageView.Font (spec §6). A nil ResolveFont, or one
	// returning ok=false, falls back to the approximation in spec §4.8.
	ResolveFont func(name pdf.Name) (pdf.FontMetrics, bool)

	// Diagnostics accumulates warnings produced while running handlers
	// (e.g. MissingFontResource), returned to the caller as values rather
	// than logged (spec §7).
	Diagnostics []pdf.Diagnostic
}

// NewState returns a State with the PDF 32000 default values: identity
// matrices, font size 0, spacings 0, horizontal scaling 100, rendering mode
// 0 (spec §3).
func NewState() *State {
	return &State{
		TextMatrix:     pdf.IdentityMatrix,
		TextLineMatrix: pdf.IdentityMatrix,
		GraphicsSnapshot: GraphicsSnapshot{
			CTM:               pdf.IdentityMatrix,
			HorizontalScaling: 100,
		},
	}
}

// Warn appends a diagnostic to the state's accumulated list.
func (s *State) Warn(d pdf.Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// Push saves the current GraphicsSnapshot on the stack (the "q" operator).
func (s *State) Push() {
	s.stack = append(s.stack, s.GraphicsSnapshot)
}

// Pop restores the most recently pushed GraphicsSnapshot (the "Q"
// operator). An empty stack is tolerated and the operator is a no-op, per
// spec §3 ("if stack empty, the operator is tolerated and ignored").
func (s *State) Pop() {
	if len(s.stack) == 0 {
		return
	}
	n := len(s.stack) - 1
	s.GraphicsSnapshot = s.stack[n]
	s.stack = s.stack[:n]
}

// StackDepth returns the number of saved snapshots, for diagnostics and
// tests.
func (s *State) StackDepth() int {
	return len(s.stack)
}

// ResetTextMatrices sets both text matrices to identity, as required at the
// start of every text object (the "BT" operator, spec §4.3).
func (s *State) ResetTextMatrices() {
	s.TextMatrix = pdf.IdentityMatrix
	s.TextLineMatrix = pdf.IdentityMatrix
}

// AdvanceLine translates the text line matrix by (tx, ty) and resets the
// text matrix to match it — the shared core of Td, TD, and T* (spec §4.3).
func (s *State) AdvanceLine(tx, ty float64) {
	s.TextLineMatrix = pdf.Translate(tx, ty).Mul(s.TextLineMatrix)
	s.TextMatrix = s.TextLineMatrix
}

// SetTextMatrices sets both text matrices to m, as the Tm operator does
// (spec §4.3).
func (s *State) SetTextMatrices(m pdf.Matrix) {
	s.TextMatrix = m
	s.TextLineMatrix = m
}

// RenderingMatrix returns T = text_matrix × CTM, mapping text space to
// page (device) space (spec §4.4).
func (s *State) RenderingMatrix() pdf.Matrix {
	return s.TextMatrix.Mul(s.CTM)
}
