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

// Handler updates state in response to one operator's operands. A handler
// must tolerate missing or extra operands: if the operand count is
// insufficient, it skips the state update without reporting an error (spec
// §4.3) — the Operator itself is always emitted regardless. index is the
// operator's position in the sequence, stamped onto any Letter produced.
type Handler func(state *State, op content.Operator, index int, letters *[]Letter)

// Registry maps operator names to their handlers. It is open: a consumer
// may register a handler for a name already present, replacing it — last
// registration wins (spec §4.3).
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a Registry preloaded with default handlers for the
// text-object, text-state, text-positioning, text-showing, and q/Q/cm
// operators of spec §4.3's table. Path-construction, painting, color, and
// XObject operators have no default handler.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	r.registerDefaults()
	return r
}

// Register installs handler for name, replacing any previous handler.
func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

// Lookup returns the handler for name, or nil if none is registered.
func (r *Registry) Lookup(name string) Handler {
	return r.handlers[name]
}

// Run applies every operator in seq to state in order (spec §5 "Ordering":
// within a single sequence, original order is preserved), and returns the
// Letters produced by text-showing operators. Operators with no
// registered handler (the Other category, and any unknown name) leave
// state unchanged.
func (r *Registry) Run(seq *content.OperatorSequence, state *State) []Letter {
	var letters []Letter
	for i, op := range seq.Operators {
		if h := r.handlers[op.Name]; h != nil {
			h(state, op, i, &letters)
		}
	}
	return letters
}

func operand(op content.Operator, i int) (pdf.Object, bool) {
	if i < 0 || i >= len(op.Operands) {
		return nil, false
	}
	return op.Operands[i], true
}

func numberOperand(op content.Operator, i int) (float64, bool) {
	obj, ok := operand(op, i)
	if !ok {
		return 0, false
	}
	return obj.AsNumber()
}

func (r *Registry) registerDefaults() {
	// Text object.
	r.Register("BT", func(s *State, op content.Operator, index int, _ *[]Letter) {
		s.InTextObject = true
		s.ResetTextMatrices()
	})
	r.Register("ET", func(s *State, op content.Operator, index int, _ *[]Letter) {
		s.InTextObject = false
	})

	// Text state.
	r.Register("Tf", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if len(op.Operands) < 2 {
			return
		}
		name, ok := op.Operands[0].(pdf.Name)
		size, ok2 := numberOperand(op, 1)
		if !ok || !ok2 {
			return
		}
		s.FontName = name
		s.FontSize = size
	})
	r.Register("Tc", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if v, ok := numberOperand(op, 0); ok {
			s.CharacterSpacing = v
		}
	})
	r.Register("Tw", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if v, ok := numberOperand(op, 0); ok {
			s.WordSpacing = v
		}
	})
	r.Register("Tz", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if v, ok := numberOperand(op, 0); ok {
			s.HorizontalScaling = v
		}
	})
	r.Register("TL", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if v, ok := numberOperand(op, 0); ok {
			s.TextLeading = v
		}
	})
	r.Register("Ts", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if v, ok := numberOperand(op, 0); ok {
			s.TextRise = v
		}
	})
	r.Register("Tr", func(s *State, op content.Operator, index int, _ *[]Letter) {
		v, ok := numberOperand(op, 0)
		if !ok {
			return
		}
		mode := int(v)
		if mode < 0 {
			mode = 0
		}
		if mode > 7 {
			mode = 7
		}
		s.TextRenderingMode = mode
	})

	// Text positioning.
	r.Register("Td", func(s *State, op content.Operator, index int, _ *[]Letter) {
		tx, ok1 := numberOperand(op, 0)
		ty, ok2 := numberOperand(op, 1)
		if !ok1 || !ok2 {
			return
		}
		s.AdvanceLine(tx, ty)
	})
	r.Register("TD", func(s *State, op content.Operator, index int, _ *[]Letter) {
		tx, ok1 := numberOperand(op, 0)
		ty, ok2 := numberOperand(op, 1)
		if !ok1 || !ok2 {
			return
		}
		s.TextLeading = -ty
		s.AdvanceLine(tx, ty)
	})
	r.Register("Tm", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if len(op.Operands) < 6 {
			return
		}
		var m pdf.Matrix
		for i := range m {
			v, ok := numberOperand(op, i)
			if !ok {
				return
			}
			m[i] = v
		}
		s.SetTextMatrices(m)
	})
	r.Register("T*", func(s *State, op content.Operator, index int, _ *[]Letter) {
		s.AdvanceLine(0, -s.TextLeading)
	})

	// Text showing.
	r.Register("Tj", func(s *State, op content.Operator, index int, letters *[]Letter) {
		b, ok := operand(op, 0)
		if !ok {
			return
		}
		raw, ok := pdf.Bytes(b)
		if !ok {
			return
		}
		*letters = append(*letters, showString(s, raw, index)...)
	})
	r.Register("'", func(s *State, op content.Operator, index int, letters *[]Letter) {
		s.AdvanceLine(0, -s.TextLeading)
		b, ok := operand(op, 0)
		if !ok {
			return
		}
		raw, ok := pdf.Bytes(b)
		if !ok {
			return
		}
		*letters = append(*letters, showString(s, raw, index)...)
	})
	r.Register("\"", func(s *State, op content.Operator, index int, letters *[]Letter) {
		aw, ok1 := numberOperand(op, 0)
		ac, ok2 := numberOperand(op, 1)
		if ok1 {
			s.WordSpacing = aw
		}
		if ok2 {
			s.CharacterSpacing = ac
		}
		s.AdvanceLine(0, -s.TextLeading)
		b, ok := operand(op, 2)
		if !ok {
			return
		}
		raw, ok := pdf.Bytes(b)
		if !ok {
			return
		}
		*letters = append(*letters, showString(s, raw, index)...)
	})
	r.Register("TJ", func(s *State, op content.Operator, index int, letters *[]Letter) {
		arr, ok := operand(op, 0)
		if !ok {
			return
		}
		a, ok := arr.(pdf.Array)
		if !ok {
			return
		}
		for _, elem := range a {
			if raw, ok := pdf.Bytes(elem); ok {
				*letters = append(*letters, showString(s, raw, index)...)
				continue
			}
			if n, ok := elem.AsNumber(); ok {
				th := s.HorizontalScaling / 100
				tx := -(n / 1000) * s.FontSize * th
				s.TextMatrix = pdf.Translate(tx, 0).Mul(s.TextMatrix)
			}
		}
	})

	// Graphics state.
	r.Register("q", func(s *State, op content.Operator, index int, _ *[]Letter) { s.Push() })
	r.Register("Q", func(s *State, op content.Operator, index int, _ *[]Letter) { s.Pop() })
	r.Register("cm", func(s *State, op content.Operator, index int, _ *[]Letter) {
		if len(op.Operands) < 6 {
			return
		}
		var m pdf.Matrix
		for i := range m {
			v, ok := numberOperand(op, i)
			if !ok {
				return
			}
			m[i] = v
		}
		s.CTM = m.Mul(s.CTM)
	})

	// Path construction, painting, color, and XObject operators do not
	// affect text state (spec §4.3); they have no default handler here and
	// are instead interpreted by the redaction engine, which computes
	// their footprint directly from the OperatorSequence.
}
