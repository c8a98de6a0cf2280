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

package content

import (
	"bytes"
	"io"

	pdf "github.com/marctjones/pdfe"
)

// Write serializes seq to bytes, one operator per line, in the canonical
// form described in spec §4.6. Write is idempotent: Write(Parse(Write(s)))
// == Write(s) for any OperatorSequence s, because Parse always decodes
// operands into the same concrete Object kinds Write reads them back as.
func Write(seq *OperatorSequence) []byte {
	var buf bytes.Buffer
	_ = WriteTo(&buf, seq) // a bytes.Buffer never returns a write error
	return buf.Bytes()
}

// WriteTo writes seq to w.
func WriteTo(w io.Writer, seq *OperatorSequence) error {
	ops := balance(seq.Operators)
	for _, op := range ops {
		for _, operand := range op.Operands {
			if err := writeOperand(w, operand); err != nil {
				return err
			}
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, op.Name); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeOperand(w io.Writer, obj pdf.Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// balance appends synthetic closing operators so that the emitted stream
// is BT/ET- and q/Q-balanced even when the parsed input was not (spec
// §4.8, scenario S6). Operators already present are never reordered or
// removed here; this only appends.
func balance(ops []Operator) []Operator {
	textDepth := 0
	gsDepth := 0
	for _, op := range ops {
		switch op.Name {
		case "BT":
			textDepth++
		case "ET":
			if textDepth > 0 {
				textDepth--
			}
		case "q":
			gsDepth++
		case "Q":
			if gsDepth > 0 {
				gsDepth--
			}
		}
	}
	if textDepth == 0 && gsDepth == 0 {
		return ops
	}

	out := make([]Operator, len(ops), len(ops)+textDepth+gsDepth)
	copy(out, ops)
	for i := 0; i < textDepth; i++ {
		out = append(out, Operator{Name: "ET", Category: CategoryTextObject})
	}
	for i := 0; i < gsDepth; i++ {
		out = append(out, Operator{Name: "Q", Category: CategoryGraphicsState})
	}
	return out
}
