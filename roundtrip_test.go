// seehuhn.de/go/pdfcore - PDF objects and font encodings for writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package pdf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "seehuhn.de/go/pdfcore"
	"seehuhn.de/go/pdfcore/parser"
)

func TestRoundTrip(t *testing.T) {
	d := pdf.NewDict()
	d.Set("Type", pdf.Name("Test"))
	d.Set("Odd Name#", pdf.Name("a/b (c)"))
	d.Set("Str", pdf.String("paren ( and \\ and \r\n\x00\xff"))
	d.Set("Hex", pdf.HexString("0102fe"))
	d.Set("Arr", pdf.Array{pdf.Integer(-7), pdf.Real(2.5), pdf.Real(3), pdf.Bool(true), pdf.Null{}})
	d.Set("Ref", pdf.Reference{Number: 12, Generation: 3})
	d.Set("Empty", pdf.NewDict())

	objs := []pdf.Object{
		d,
		pdf.Integer(42),
		pdf.Name("Next"),
		pdf.Array{},
	}

	buf := &bytes.Buffer{}
	for _, obj := range objs {
		err := obj.PDF(buf)
		if err != nil {
			t.Fatal(err)
		}
		buf.WriteString("\n")
	}

	p := parser.NewParser(parser.NewTokenizer(buf), nil)
	got, err := p.ParseAll()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(objs, got, cmp.Comparer(pdf.Equal)); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestWriterOutputParses(t *testing.T) {
	out := &bytes.Buffer{}
	w, err := pdf.NewWriter(out, nil)
	if err != nil {
		t.Fatal(err)
	}
	catalogRef := w.Alloc()
	catalog := pdf.NewDict()
	catalog.Set("Type", pdf.Name("Catalog"))
	err = w.WriteIndirect(catalogRef, catalog)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalogRef)
	if err != nil {
		t.Fatal(err)
	}

	body := out.String()
	start := strings.Index(body, "1 0 obj")
	end := strings.Index(body, "endobj")
	if start < 0 || end < start {
		t.Fatalf("object 1 not found in %q", body)
	}

	p := parser.NewParser(parser.NewTokenizer(strings.NewReader(body[start:end+6])), nil)
	got, err := p.ParseAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []pdf.Object{
		pdf.Integer(1), pdf.Integer(0), pdf.Symbol("obj"),
		catalog,
		pdf.Symbol("endobj"),
	}
	if d := cmp.Diff(want, got, cmp.Comparer(pdf.Equal)); d != "" {
		t.Error(d)
	}
}
