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

// Package page ties the content, graphics, and redact packages together
// behind a single per-page entry point (spec §4.7), so a caller never has
// to parse, run the text state machine, and serialize by hand.
package page

import (
	"fmt"

	pdf "github.com/marctjones/pdfe"
	"github.com/marctjones/pdfe/content"
	"github.com/marctjones/pdfe/graphics"
	"github.com/marctjones/pdfe/redact"
)

// Page wraps a pdf.PageView, caching the parsed content stream across
// repeated operations so that, e.g., Letters() followed by Redact().Apply()
// does not re-lex and re-parse the stream twice.
type Page struct {
	view pdf.PageView

	parsed      bool
	seq         *content.OperatorSequence
	diagnostics []pdf.Diagnostic
}

// New wraps view for content-stream inspection and redaction.
func New(view pdf.PageView) *Page {
	return &Page{view: view}
}

// GetContentStream returns the page's parsed operator sequence, parsing
// and caching it on first use.
func (p *Page) GetContentStream() (*content.OperatorSequence, []pdf.Diagnostic, error) {
	if p.parsed {
		return p.seq, p.diagnostics, nil
	}
	raw, err := p.view.ContentBytes()
	if err != nil {
		return nil, nil, fmt.Errorf("page: reading content stream: %w", err)
	}
	seq, diags := content.Parse(raw)
	p.seq, p.diagnostics, p.parsed = seq, diags, true
	return p.seq, p.diagnostics, nil
}

// SetContentStream serializes seq and writes it back through the
// underlying PageView, replacing the cached sequence.
func (p *Page) SetContentStream(seq *content.OperatorSequence) error {
	if err := p.view.SetContentBytes(content.Write(seq)); err != nil {
		return fmt.Errorf("page: writing content stream: %w", err)
	}
	p.seq, p.parsed = seq, true
	return nil
}

// Letters runs the text-rendering state machine over the page's content
// stream and returns every glyph it produced, in stream order (spec §3).
func (p *Page) Letters() ([]graphics.Letter, error) {
	seq, _, err := p.GetContentStream()
	if err != nil {
		return nil, err
	}
	state := graphics.NewState()
	state.ResolveFont = p.view.Font
	return graphics.NewRegistry().Run(seq, state), nil
}

// Redact returns a redaction Builder preconfigured with this page's font
// resolver, ready for RedactArea/RedactText/etc. calls followed by Apply.
// Apply's result must be written back explicitly via SetContentStream.
func (p *Page) Redact() *redact.Builder {
	return redact.NewBuilder(p.view.Font)
}

// MediaBox, CropBox, and UserUnit expose the underlying PageView's page
// geometry, so callers building redaction areas in page space don't need
// to hold onto the original PageView alongside the Page.
func (p *Page) MediaBox() pdf.Rectangle { return p.view.MediaBox() }
func (p *Page) CropBox() pdf.Rectangle  { return p.view.CropBox() }
func (p *Page) UserUnit() float64       { return p.view.UserUnit() }
