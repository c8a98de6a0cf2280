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

import pdf "github.com/marctjones/pdfe"

// Category classifies an Operator for the purposes of text-state tracking
// and redaction footprint computation (spec §3, §4.5).
type Category int

const (
	CategoryOther Category = iota
	CategoryTextObject
	CategoryTextState
	CategoryTextPositioning
	CategoryTextShowing
	CategoryGraphicsState
	CategoryPathConstruction
	CategoryPathPainting
	CategoryXObject
	CategoryColor
)

func (c Category) String() string {
	switch c {
	case CategoryTextObject:
		return "TextObject"
	case CategoryTextState:
		return "TextState"
	case CategoryTextPositioning:
		return "TextPositioning"
	case CategoryTextShowing:
		return "TextShowing"
	case CategoryGraphicsState:
		return "GraphicsState"
	case CategoryPathConstruction:
		return "PathConstruction"
	case CategoryPathPainting:
		return "PathPainting"
	case CategoryXObject:
		return "XObject"
	case CategoryColor:
		return "Color"
	default:
		return "Other"
	}
}

// categories maps every operator name this package understands to its
// category (spec §4.3's operator table). Names absent from this map
// default to CategoryOther, which is also what unknown/unrecognized
// operator names receive.
var categories = map[string]Category{
	"BT": CategoryTextObject,
	"ET": CategoryTextObject,

	"Tf": CategoryTextState,
	"Tc": CategoryTextState,
	"Tw": CategoryTextState,
	"Tz": CategoryTextState,
	"TL": CategoryTextState,
	"Ts": CategoryTextState,
	"Tr": CategoryTextState,

	"Td": CategoryTextPositioning,
	"TD": CategoryTextPositioning,
	"Tm": CategoryTextPositioning,
	"T*": CategoryTextPositioning,

	"Tj":  CategoryTextShowing,
	"TJ":  CategoryTextShowing,
	"'":   CategoryTextShowing,
	"\"":  CategoryTextShowing,

	"q":  CategoryGraphicsState,
	"Q":  CategoryGraphicsState,
	"cm": CategoryGraphicsState,
	"gs": CategoryGraphicsState,
	"w":  CategoryGraphicsState,
	"J":  CategoryGraphicsState,
	"j":  CategoryGraphicsState,
	"M":  CategoryGraphicsState,
	"d":  CategoryGraphicsState,
	"ri": CategoryGraphicsState,
	"i":  CategoryGraphicsState,

	"m":  CategoryPathConstruction,
	"l":  CategoryPathConstruction,
	"c":  CategoryPathConstruction,
	"v":  CategoryPathConstruction,
	"y":  CategoryPathConstruction,
	"h":  CategoryPathConstruction,
	"re": CategoryPathConstruction,

	"S":  CategoryPathPainting,
	"s":  CategoryPathPainting,
	"f":  CategoryPathPainting,
	"F":  CategoryPathPainting,
	"f*": CategoryPathPainting,
	"B":  CategoryPathPainting,
	"B*": CategoryPathPainting,
	"b":  CategoryPathPainting,
	"b*": CategoryPathPainting,
	"n":  CategoryPathPainting,
	"W":  CategoryPathPainting,
	"W*": CategoryPathPainting,

	"g":   CategoryColor,
	"G":   CategoryColor,
	"rg":  CategoryColor,
	"RG":  CategoryColor,
	"k":   CategoryColor,
	"K":   CategoryColor,
	"cs":  CategoryColor,
	"CS":  CategoryColor,
	"sc":  CategoryColor,
	"SC":  CategoryColor,
	"scn": CategoryColor,
	"SCN": CategoryColor,

	"Do": CategoryXObject,
	"BI": CategoryXObject,
	"ID": CategoryXObject,
	"EI": CategoryXObject,
}

// CategoryOf returns the category for a named operator, CategoryOther if
// the name is not recognized.
func CategoryOf(name string) Category {
	if c, ok := categories[name]; ok {
		return c
	}
	return CategoryOther
}

// Operator is one operator and its operands, as produced by Parse (spec
// §3). StreamOffset is the byte offset of the first token of the operator
// (its first operand, or the operator keyword itself if it has none) in
// the source buffer.
type Operator struct {
	Name         string
	Operands     []pdf.Object
	StreamOffset int64
	Category     Category
}

// OperatorSequence is an ordered list of Operator values produced by
// parsing one content stream (spec §3).
type OperatorSequence struct {
	Operators []Operator
}

// Len returns the number of operators in the sequence.
func (s *OperatorSequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Operators)
}

// Clone returns a copy of the sequence whose operator and operand slices
// do not alias the original, so either can be mutated independently;
// nested arrays and dictionaries inside operands are shared.
func (s *OperatorSequence) Clone() *OperatorSequence {
	out := &OperatorSequence{Operators: make([]Operator, len(s.Operators))}
	for i, op := range s.Operators {
		operands := make([]pdf.Object, len(op.Operands))
		copy(operands, op.Operands)
		out.Operators[i] = Operator{
			Name:         op.Name,
			Operands:     operands,
			StreamOffset: op.StreamOffset,
			Category:     op.Category,
		}
	}
	return out
}
