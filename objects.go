// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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
	"bytes"
	"fmt"
	"io"
	"math"
)

// Object is the tagged union of PDF object kinds that can appear as a
// content-stream operand: Integer, Real, Name, LiteralString, HexString,
// Array, Dictionary, Reference, Boolean, and the untyped nil (Null).
//
// The set of implementations is closed: isObject is unexported so that no
// package outside pdf can add a new kind.
type Object interface {
	// PDF writes the textual form of the object to w in the normalized
	// form described in spec §4.6. The content writer (package content)
	// emits every operand through this method, and arrays/dicts use it
	// for their elements.
	PDF(w io.Writer) error

	// AsNumber returns the object's numeric value and true if the object
	// is an Integer or a Real, or (0, false) otherwise. This is the single
	// accessor mentioned in the design notes that replaces the numeric
	// type-switch sprinkled through handler code.
	AsNumber() (float64, bool)

	isObject()
}

// Integer is a PDF integer object.
type Integer int64

func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, fmt.Sprintf("%d", int64(x)))
	return err
}

func (x Integer) AsNumber() (float64, bool) { return float64(x), true }
func (Integer) isObject()                   {}

// Real is a PDF real-number object. The invariant from spec §3 (a Real is
// finite) is enforced by NewReal; callers constructing a Real literal via a
// type conversion are trusted not to smuggle in NaN/Inf, matching the rest
// of the object model which does not validate literals constructed outside
// the package.
type Real float64

// NewReal validates f and returns an error if it is not finite.
func NewReal(f float64) (Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("pdf: non-finite real %v", f)
	}
	return Real(f), nil
}

func (x Real) PDF(w io.Writer) error {
	_, err := io.WriteString(w, formatReal(float64(x)))
	return err
}

func (x Real) AsNumber() (float64, bool) { return float64(x), true }
func (Real) isObject()                   {}

// Name is a decoded PDF name (the leading slash and any #xx escapes are
// already resolved). A Name is never empty (spec §3 invariant): the lexer
// reports a bare '/' as an error token, and NewName enforces this for
// callers constructing names outside the lexer.
type Name string

// NewName validates that name is non-empty.
func NewName(name string) (Name, error) {
	if name == "" {
		return "", fmt.Errorf("pdf: empty name")
	}
	return Name(name), nil
}

func (x Name) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "/"+escapeName(string(x)))
	return err
}

func (Name) AsNumber() (float64, bool) { return 0, false }
func (Name) isObject()                 {}

// escapeName renders the characters of a name outside the PDF "regular
// character" safe set as #xx.
func escapeName(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b >= '!' && b <= '~' && b != '#' && !isDelimiter(b) {
			buf.WriteByte(b)
		} else {
			fmt.Fprintf(&buf, "#%02x", b)
		}
	}
	return buf.String()
}

// LiteralString is a PDF string object that was (or will be) written using
// balanced-parenthesis literal syntax, e.g. "(Hello)".
type LiteralString []byte

func (x LiteralString) PDF(w io.Writer) error {
	_, err := w.Write(formatLiteralString(x))
	return err
}

func (LiteralString) AsNumber() (float64, bool) { return 0, false }
func (LiteralString) isObject()                 {}

// HexString is a PDF string object that was (or will be) written using
// angle-bracket hex syntax, e.g. "<48656C6C6F>".
//
// Keeping HexString distinct from LiteralString (rather than collapsing
// both into one String type, as some PDF libraries do) is what lets the
// content writer satisfy spec §4.6's "hex strings used verbatim when the
// input was hex" rule without guessing at the source form after the fact.
type HexString []byte

func (x HexString) PDF(w io.Writer) error {
	_, err := w.Write(formatHexString(x))
	return err
}

func (HexString) AsNumber() (float64, bool) { return 0, false }
func (HexString) isObject()                 {}

// Bytes returns the raw decoded bytes of a literal or hex string.
func Bytes(s Object) ([]byte, bool) {
	switch s := s.(type) {
	case LiteralString:
		return []byte(s), true
	case HexString:
		return []byte(s), true
	default:
		return nil, false
	}
}

// Array is an ordered sequence of PDF objects.
type Array []Object

func (x Array) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, elem := range x {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := writeObjectOrNull(w, elem); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

func (Array) AsNumber() (float64, bool) { return 0, false }
func (Array) isObject()                 {}

// Dictionary is a PDF dictionary: a mapping from Name to Object with
// key uniqueness and insertion order preserved (spec §3), so that
// re-serializing a parsed dictionary is reproducible byte-for-byte.
type Dictionary struct {
	keys   []Name
	values map[Name]Object
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: make(map[Name]Object)}
}

// Set inserts or overwrites the value for key, preserving the key's
// original insertion position if it already existed.
func (d *Dictionary) Set(key Name, value Object) {
	if d.values == nil {
		d.values = make(map[Name]Object)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key, or (nil, false) if the key is absent.
func (d *Dictionary) Get(key Name) (Object, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dictionary) Keys() []Name {
	if d == nil {
		return nil
	}
	out := make([]Name, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries in the dictionary.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

func (d *Dictionary) PDF(w io.Writer) error {
	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for i, key := range d.keys {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := writeObjectOrNull(w, d.values[key]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">>")
	return err
}

func (*Dictionary) AsNumber() (float64, bool) { return 0, false }
func (*Dictionary) isObject()                 {}

// Reference is an indirect object reference "num gen R".
type Reference struct {
	Number     uint32
	Generation uint16
}

func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

func (Reference) AsNumber() (float64, bool) { return 0, false }
func (Reference) isObject()                 {}

// Boolean is a PDF boolean object.
type Boolean bool

func (x Boolean) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

func (Boolean) AsNumber() (float64, bool) { return 0, false }
func (Boolean) isObject()                 {}

// writeObjectOrNull writes obj.PDF(w), treating a nil Object (Null, spec
// §3) as the literal keyword "null" the way the teacher's scanner/writer
// represents absent dictionary entries and array holes.
func writeObjectOrNull(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format renders obj as a string in the same textual form the content
// writer emits for an operand, with a nil Object rendered as "null".
func Format(obj Object) string {
	var buf bytes.Buffer
	_ = writeObjectOrNull(&buf, obj)
	return buf.String()
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}
