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

// Package content implements the content-stream lexer, parser, and writer:
// turning raw content-stream bytes into an OperatorSequence and back
// (spec §3, §4).
package content

import (
	"fmt"
	"math"
	"strconv"

	pdf "github.com/marctjones/pdfe"
)

// Lexer breaks a content stream into tokens. It never panics on malformed
// input: an unrecognized byte sequence produces a TokenError carrying a
// *pdf.LexError, and lexing continues from the next byte (spec §4.1, §7).
//
// Unlike the teacher's io.Reader-backed scanner, Lexer operates directly
// on an in-memory byte buffer, since content streams are always fully
// decoded before reaching this package (spec §6: content_bytes is already
// decompressed/decrypted and concatenated). This drops the refill/ahead
// buffering machinery but keeps the same byte-classification and escape
// handling algorithms.
type Lexer struct {
	buf []byte
	pos int
}

// NewLexer returns a Lexer reading from buf.
func NewLexer(buf []byte) *Lexer {
	return &Lexer{buf: buf}
}

// Position returns the current byte offset into the buffer.
func (l *Lexer) Position() int64 { return int64(l.pos) }

// Seek repositions the lexer at the given byte offset. Offsets outside
// [0, len(buf)] are clamped, matching the tolerant failure policy used
// throughout this package.
func (l *Lexer) Seek(offset int64) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(l.buf)) {
		offset = int64(len(l.buf))
	}
	l.pos = int(offset)
}

// Next returns the next token. At end of input it returns a TokenEOF
// token forever.
func (l *Lexer) Next() Token {
	l.skipWhiteSpace()
	start := l.pos
	if l.pos >= len(l.buf) {
		return Token{Kind: TokenEOF, Offset: int64(start)}
	}

	b := l.buf[l.pos]
	switch {
	case b == '(':
		return l.readLiteralString()
	case b == '<':
		if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '<' {
			l.pos += 2
			return Token{Kind: TokenDictStart, Offset: int64(start)}
		}
		return l.readHexString()
	case b == '>':
		if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '>' {
			l.pos += 2
			return Token{Kind: TokenDictEnd, Offset: int64(start)}
		}
		l.pos++
		return l.errorToken(start, "unexpected '>'")
	case b == '[':
		l.pos++
		return Token{Kind: TokenArrayStart, Offset: int64(start)}
	case b == ']':
		l.pos++
		return Token{Kind: TokenArrayEnd, Offset: int64(start)}
	case b == '/':
		return l.readName()
	case b == ')':
		l.pos++
		return l.errorToken(start, "unexpected ')'")
	case b == '{' || b == '}':
		// PostScript calculator-function syntax; not a content-stream
		// operator, but tolerated as an opaque keyword so that unknown
		// constructs survive a round trip (spec §4.2).
		l.pos++
		return Token{Kind: TokenKeyword, Offset: int64(start), Keyword: string(b)}
	default:
		return l.readRegularRun(start)
	}
}

func (l *Lexer) errorToken(offset int, reason string) Token {
	return Token{
		Kind:   TokenError,
		Offset: int64(offset),
		Err:    &pdf.LexError{Offset: int64(offset), Reason: reason},
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		if isWhiteSpace(b) {
			l.pos++
		} else if b == '%' {
			for l.pos < len(l.buf) && l.buf[l.pos] != '\n' && l.buf[l.pos] != '\r' {
				l.pos++
			}
		} else {
			return
		}
	}
}

func (l *Lexer) readRegularRun(start int) Token {
	for l.pos < len(l.buf) && isRegular(l.buf[l.pos]) {
		l.pos++
	}
	word := l.buf[start:l.pos]
	if len(word) == 0 {
		// A byte that is neither regular nor dispatched by Next. Next
		// handles every delimiter itself, so this is a defensive fallback.
		l.pos++
		return l.errorToken(start, fmt.Sprintf("unexpected byte %q", l.buf[start]))
	}

	if obj, ok := parseNumber(word); ok {
		kind := TokenInteger
		if _, isReal := obj.(pdf.Real); isReal {
			kind = TokenReal
		}
		return Token{Kind: kind, Offset: int64(start), Object: obj}
	}

	return Token{Kind: TokenKeyword, Offset: int64(start), Keyword: string(word)}
}

func parseNumber(word []byte) (pdf.Object, bool) {
	if n, err := strconv.ParseInt(string(word), 10, 64); err == nil {
		return pdf.Integer(n), true
	}

	isNumeric := len(word) > 0
	sawDigitOrDot := false
	for i, c := range word {
		switch {
		case c == '+' || c == '-':
			if i != 0 {
				isNumeric = false
			}
		case c == '.':
			sawDigitOrDot = true
		case c >= '0' && c <= '9':
			sawDigitOrDot = true
		default:
			isNumeric = false
		}
		if !isNumeric {
			break
		}
	}
	if !isNumeric || !sawDigitOrDot {
		return nil, false
	}

	f, err := strconv.ParseFloat(string(word), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return pdf.Real(f), true
}

func (l *Lexer) readName() Token {
	start := l.pos
	l.pos++ // skip '/'
	var out []byte
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		if b == '#' && l.pos+2 < len(l.buf) && isHexDigit(l.buf[l.pos+1]) && isHexDigit(l.buf[l.pos+2]) {
			hi := hexValue(l.buf[l.pos+1])
			lo := hexValue(l.buf[l.pos+2])
			out = append(out, hi<<4|lo)
			l.pos += 3
			continue
		}
		if !isRegular(b) {
			break
		}
		out = append(out, b)
		l.pos++
	}
	if len(out) == 0 {
		return l.errorToken(start, "empty name")
	}
	return Token{Kind: TokenName, Offset: int64(start), Object: pdf.Name(out)}
}

func (l *Lexer) readLiteralString() Token {
	start := l.pos
	l.pos++ // skip '('
	depth := 1
	var out []byte
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		switch b {
		case '(':
			depth++
			out = append(out, b)
			l.pos++
		case ')':
			depth--
			l.pos++
			if depth == 0 {
				return Token{Kind: TokenLiteralString, Offset: int64(start), Object: pdf.LiteralString(out)}
			}
			out = append(out, b)
		case '\\':
			l.pos++
			if l.pos >= len(l.buf) {
				return Token{Kind: TokenLiteralString, Offset: int64(start), Object: pdf.LiteralString(out)}
			}
			c := l.buf[l.pos]
			switch c {
			case 'n':
				out = append(out, '\n')
				l.pos++
			case 'r':
				out = append(out, '\r')
				l.pos++
			case 't':
				out = append(out, '\t')
				l.pos++
			case 'b':
				out = append(out, '\b')
				l.pos++
			case 'f':
				out = append(out, '\f')
				l.pos++
			case '(', ')', '\\':
				out = append(out, c)
				l.pos++
			case '\r':
				l.pos++
				if l.pos < len(l.buf) && l.buf[l.pos] == '\n' {
					l.pos++
				}
			case '\n':
				l.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				val := c - '0'
				l.pos++
				for i := 0; i < 2 && l.pos < len(l.buf); i++ {
					d := l.buf[l.pos]
					if d < '0' || d > '7' {
						break
					}
					val = val*8 + (d - '0')
					l.pos++
				}
				out = append(out, val)
			default:
				out = append(out, c)
				l.pos++
			}
		default:
			out = append(out, b)
			l.pos++
		}
	}
	// Ran off the end of the buffer with an open paren: tolerate it and
	// return what we have (spec §4.8: never panic on malformed input).
	return Token{Kind: TokenLiteralString, Offset: int64(start), Object: pdf.LiteralString(out)}
}

func (l *Lexer) readHexString() Token {
	start := l.pos
	l.pos++ // skip '<'
	var out []byte
	haveHi := false
	var hi byte
	for l.pos < len(l.buf) {
		b := l.buf[l.pos]
		if b == '>' {
			l.pos++
			if haveHi {
				out = append(out, hi<<4)
			}
			return Token{Kind: TokenHexString, Offset: int64(start), Object: pdf.HexString(out)}
		}
		if isWhiteSpace(b) {
			l.pos++
			continue
		}
		if !isHexDigit(b) {
			l.pos++
			continue // tolerate stray bytes rather than aborting the token
		}
		v := hexValue(b)
		if !haveHi {
			hi = v
			haveHi = true
		} else {
			out = append(out, hi<<4|v)
			haveHi = false
		}
		l.pos++
	}
	if haveHi {
		out = append(out, hi<<4)
	}
	return Token{Kind: TokenHexString, Offset: int64(start), Object: pdf.HexString(out)}
}

func isWhiteSpace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}

func isRegular(b byte) bool {
	return !isWhiteSpace(b) && !isDelimiter(b)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
