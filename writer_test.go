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

package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestAlloc(t *testing.T) {
	w, err := NewWriter(&bytes.Buffer{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var last uint32
	for range 10 {
		ref := w.Alloc()
		if ref.Number <= last {
			t.Fatalf("object number %d after %d", ref.Number, last)
		}
		last = ref.Number
	}

	c := &Counter{}
	if ref := c.Alloc(); ref.Number != 1 {
		t.Errorf("first counter value is %d", ref.Number)
	}
	if ref := c.Alloc(); ref.Number != 2 {
		t.Errorf("second counter value is %d", ref.Number)
	}
}

func TestWriter(t *testing.T) {
	out := &bytes.Buffer{}
	w, err := NewWriter(out, &WriterOptions{Version: V1_4})
	if err != nil {
		t.Fatal(err)
	}

	catalogRef := w.Alloc()
	pagesRef := w.Alloc()
	unused := w.Alloc()

	pages := NewDict()
	pages.Set("Type", Name("Pages"))
	pages.Set("Kids", Array{})
	pages.Set("Count", Integer(0))
	err = w.WriteIndirect(pagesRef, pages)
	if err != nil {
		t.Fatal(err)
	}

	catalog := NewDict()
	catalog.Set("Type", Name("Catalog"))
	catalog.Set("Pages", pagesRef)
	err = w.WriteIndirect(catalogRef, catalog)
	if err != nil {
		t.Fatal(err)
	}

	err = w.WriteIndirect(catalogRef, catalog)
	if err == nil {
		t.Error("object written twice")
	}
	err = w.WriteIndirect(Reference{Number: 99}, Null{})
	if err == nil {
		t.Error("unallocated object written")
	}

	err = w.Close(catalogRef)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(catalogRef)
	if err == nil {
		t.Error("writer closed twice")
	}

	body := out.String()
	if !strings.HasPrefix(body, "%PDF-1.4\n") {
		t.Errorf("wrong header %q", body[:10])
	}
	if !strings.Contains(body, "xref\n0 4\n") {
		t.Error("xref table has wrong size")
	}
	if !strings.Contains(body, "0000000000 00001 f\r\n") {
		t.Errorf("object %s not marked as free", unused)
	}
	if !strings.Contains(body, "trailer\n<<\n/Size 4\n/Root 1 0 R\n>>") {
		t.Error("wrong trailer")
	}
	if !strings.HasSuffix(body, "%%EOF\n") {
		t.Error("missing end of file marker")
	}
}
