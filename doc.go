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

// Package pdf holds the primitives of a PDF redaction engine's
// content-stream pipeline: typed PDF objects, affine matrices, rectangles,
// diagnostics and error types, and the PageView interface. The lexer,
// parser, and writer live in the content subpackage, the operator handlers
// and text-rendering state machine in graphics, and the redaction engine
// in redact.
//
// The package deliberately does not know how to traverse a cross-reference
// table, decrypt a stream, or rasterize a page. Callers supply already
// decoded content-stream bytes and resource metadata through the PageView
// interface; see the page subpackage for the glue code.
package pdf
