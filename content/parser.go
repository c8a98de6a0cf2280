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

// Parser consumes Lexer tokens and groups them into Operator records:
// operands accumulate until a bare keyword is seen, at which point the
// keyword becomes the operator name and the accumulated operands (plus
// any recursively-parsed arrays/dicts) are attached to it (spec §4.2).
type Parser struct {
	lex   *Lexer
	diags []pdf.Diagnostic
}

// NewParser returns a Parser reading from buf.
func NewParser(buf []byte) *Parser {
	return &Parser{lex: NewLexer(buf)}
}

// Parse lexes and parses buf in one call.
func Parse(buf []byte) (*OperatorSequence, []pdf.Diagnostic) {
	return NewParser(buf).Parse()
}

// Parse runs the parser to completion and returns the resulting sequence
// together with any diagnostics accumulated along the way. Parse never
// returns an error: malformed tokens and stray delimiters are reported as
// warning diagnostics and skipped, without emitting an operator for them.
// Unknown operator names are kept as CategoryOther operators.
func (p *Parser) Parse() (*OperatorSequence, []pdf.Diagnostic) {
	seq := &OperatorSequence{}
	var operands []pdf.Object
	operandsStart := int64(-1)

	pushOperand := func(obj pdf.Object, offset int64) {
		if len(operands) == 0 {
			operandsStart = offset
		}
		operands = append(operands, obj)
	}

	flush := func(name string, keywordOffset int64) {
		start := keywordOffset
		if operandsStart >= 0 {
			start = operandsStart
		}
		seq.Operators = append(seq.Operators, Operator{
			Name:         name,
			Operands:     operands,
			StreamOffset: start,
			Category:     CategoryOf(name),
		})
		operands = nil
		operandsStart = -1
	}

	for {
		tok := p.lex.Next()
		switch tok.Kind {
		case TokenEOF:
			return seq, p.diags

		case TokenError:
			p.diags = append(p.diags, pdf.Diagnostic{
				Severity: pdf.SeverityWarning,
				Offset:   tok.Offset,
				Kind:     "LexError",
				Message:  tok.Err.Reason,
			})
			// Tolerated: the offending byte was already consumed by the
			// lexer; parsing continues from the next token.

		case TokenInteger, TokenReal, TokenName, TokenLiteralString, TokenHexString:
			pushOperand(tok.Object, tok.Offset)

		case TokenArrayStart:
			pushOperand(p.readArray(), tok.Offset)

		case TokenDictStart:
			pushOperand(p.readDict(), tok.Offset)

		case TokenArrayEnd, TokenDictEnd:
			p.diags = append(p.diags, pdf.Diagnostic{
				Severity: pdf.SeverityWarning,
				Offset:   tok.Offset,
				Kind:     "ParseError",
				Message:  "unmatched closing delimiter",
			})

		case TokenKeyword:
			switch tok.Keyword {
			case "true":
				pushOperand(pdf.Boolean(true), tok.Offset)
			case "false":
				pushOperand(pdf.Boolean(false), tok.Offset)
			case "null":
				pushOperand(nil, tok.Offset)
			default:
				flush(tok.Keyword, tok.Offset)
			}
		}
	}
}

// readArray parses an array body after the opening '[' has already been
// consumed, recursively handling nested arrays and dictionaries.
func (p *Parser) readArray() pdf.Array {
	var arr pdf.Array
	for {
		tok := p.lex.Next()
		switch tok.Kind {
		case TokenArrayEnd, TokenEOF:
			return arr
		case TokenArrayStart:
			arr = append(arr, p.readArray())
		case TokenDictStart:
			arr = append(arr, p.readDict())
		case TokenKeyword:
			switch tok.Keyword {
			case "true":
				arr = append(arr, pdf.Boolean(true))
			case "false":
				arr = append(arr, pdf.Boolean(false))
			case "null":
				arr = append(arr, nil)
			default:
				// A bare operator keyword cannot appear inside an array;
				// tolerate and drop it rather than aborting (spec §4.8).
				p.diags = append(p.diags, pdf.Diagnostic{
					Severity: pdf.SeverityWarning,
					Offset:   tok.Offset,
					Kind:     "ParseError",
					Message:  "unexpected keyword inside array: " + tok.Keyword,
				})
			}
		case TokenError:
			p.diags = append(p.diags, pdf.Diagnostic{
				Severity: pdf.SeverityWarning,
				Offset:   tok.Offset,
				Kind:     "LexError",
				Message:  tok.Err.Reason,
			})
		default:
			arr = append(arr, tok.Object)
		}
	}
}

// readDict parses a dictionary body after the opening '<<' has already
// been consumed.
func (p *Parser) readDict() *pdf.Dictionary {
	d := pdf.NewDictionary()
	for {
		keyTok := p.lex.Next()
		if keyTok.Kind == TokenDictEnd || keyTok.Kind == TokenEOF {
			return d
		}
		if keyTok.Kind != TokenName {
			p.diags = append(p.diags, pdf.Diagnostic{
				Severity: pdf.SeverityWarning,
				Offset:   keyTok.Offset,
				Kind:     "ParseError",
				Message:  "expected dictionary key",
			})
			continue
		}
		key := keyTok.Object.(pdf.Name)

		valTok := p.lex.Next()
		var val pdf.Object
		switch valTok.Kind {
		case TokenArrayStart:
			val = p.readArray()
		case TokenDictStart:
			val = p.readDict()
		case TokenDictEnd, TokenEOF:
			d.Set(key, nil)
			return d
		case TokenKeyword:
			switch valTok.Keyword {
			case "true":
				val = pdf.Boolean(true)
			case "false":
				val = pdf.Boolean(false)
			default:
				val = nil
			}
		default:
			val = valTok.Object
		}
		d.Set(key, val)
	}
}
