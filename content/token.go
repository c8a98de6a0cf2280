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

import "github.com/marctjones/pdfe"

// TokenKind classifies a single token produced by the Lexer.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInteger
	TokenReal
	TokenName
	TokenLiteralString
	TokenHexString
	TokenArrayStart // '['
	TokenArrayEnd   // ']'
	TokenDictStart  // '<<'
	TokenDictEnd    // '>>'
	TokenKeyword    // bare word: an operator name, or true/false/null handled by caller
	TokenError
)

// Token is one lexical unit read from a content stream.
type Token struct {
	Kind   TokenKind
	Offset int64 // byte offset of the first character of the token

	// Object holds the decoded value for TokenInteger, TokenReal,
	// TokenName, TokenLiteralString, TokenHexString.
	Object pdf.Object

	// Keyword holds the raw bytes of a TokenKeyword token.
	Keyword string

	// Err holds the diagnostic for a TokenError token.
	Err *pdf.LexError
}
