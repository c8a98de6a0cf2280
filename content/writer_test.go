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
	"testing"
)

func TestWriteRoundTripsOperators(t *testing.T) {
	in := "q\n1 0 0 1 72 720 cm\nBT\n/F1 12 Tf\n(Hello) Tj\nET\nQ\n"
	seq, diags := Parse([]byte(in))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	out := Write(seq)

	seq2, diags2 := Parse(out)
	if len(diags2) != 0 {
		t.Fatalf("unexpected diagnostics on reparse: %v", diags2)
	}
	out2 := Write(seq2)
	if !bytes.Equal(out, out2) {
		t.Errorf("Write is not idempotent:\nfirst:  %q\nsecond: %q", out, out2)
	}
}

func TestWritePreservesHexVsLiteralStringForm(t *testing.T) {
	seq, _ := Parse([]byte("(lit) Tj <48656C> Tj"))
	out := string(Write(seq))
	if !bytes.Contains([]byte(out), []byte("(lit) Tj")) {
		t.Errorf("literal string form not preserved: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("<48656c> Tj")) && !bytes.Contains([]byte(out), []byte("<48656C> Tj")) {
		t.Errorf("hex string form not preserved: %q", out)
	}
}

func TestWriteSynthesizesMissingET(t *testing.T) {
	seq, diags := Parse([]byte("BT /F1 12 Tf (unterminated text object) Tj"))
	_ = diags
	out := string(Write(seq))
	if !bytes.Contains([]byte(out), []byte("ET")) {
		t.Errorf("expected a synthetic ET to be appended, got %q", out)
	}
	// The synthetic ET must be balanced: exactly one BT and one ET.
	if bytes.Count([]byte(out), []byte("BT")) != bytes.Count([]byte(out), []byte("ET")) {
		t.Errorf("BT/ET unbalanced after write: %q", out)
	}
}

func TestWriteSynthesizesMissingQ(t *testing.T) {
	seq, _ := Parse([]byte("q q 1 0 0 RG"))
	out := string(Write(seq))
	if bytes.Count([]byte(out), []byte("q\n")) != bytes.Count([]byte(out), []byte("Q\n")) {
		t.Errorf("q/Q unbalanced after write: %q", out)
	}
}

func TestWriteLeavesBalancedInputUnchanged(t *testing.T) {
	seq, _ := Parse([]byte("q BT ET Q"))
	out := Write(seq)
	seq2, _ := Parse(out)
	if seq2.Len() != seq.Len() {
		t.Errorf("operator count changed: %d vs %d", seq2.Len(), seq.Len())
	}
}

func TestWriteEmptySequence(t *testing.T) {
	seq := &OperatorSequence{}
	out := Write(seq)
	if len(out) != 0 {
		t.Errorf("Write(empty) = %q, want empty", out)
	}
}
