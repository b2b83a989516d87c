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

package gofont

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "seehuhn.de/go/pdfcore"
	"seehuhn.de/go/pdfcore/font/written"
)

func TestLoad(t *testing.T) {
	for _, F := range All {
		g, err := F.Load()
		if err != nil {
			t.Fatalf("font %d: %v", F, err)
		}
		if g.NumGlyphs() < 100 {
			t.Errorf("font %d: only %d glyphs", F, g.NumGlyphs())
		}
		if g.PostScriptName() == "" {
			t.Errorf("font %d: no PostScript name", F)
		}

		gids, text := g.Layout("Go" + string(Gopher))
		if len(gids) != 3 || len(text) != 3 {
			t.Fatalf("font %d: wrong layout length", F)
		}
		for i, gid := range gids {
			if gid == 0 {
				t.Errorf("font %d: no glyph for %q", F, text[i])
			}
		}
	}

	_, err := Font(-1).Load()
	if err == nil {
		t.Error("invalid font loaded")
	}
}

// TestEncode encodes text using real glyph IDs from the Go fonts.
func TestEncode(t *testing.T) {
	g, err := Regular.Load()
	if err != nil {
		t.Fatal(err)
	}

	f := written.New(&pdf.Counter{}, written.TrueTypeStrategy{})

	gids, text := g.Layout("Hello, World")
	codes, wide, ref, err := f.AppendGlyphs(gids, text)
	if err != nil {
		t.Fatal(err)
	}
	if wide {
		t.Error("wide table used for ASCII text")
	}
	if d := cmp.Diff([]written.Code{'H', 'e', 'l', 'l', 'o', ',', ' ', 'W', 'o', 'r', 'l', 'd'}, codes); d != "" {
		t.Errorf("wrong codes (-want +got):\n%s", d)
	}

	gids, text = g.Layout(string(Gopher))
	codes, wide, ref2, err := f.AppendGlyphs(gids, text)
	if err != nil {
		t.Fatal(err)
	}
	if !wide || ref2 == ref {
		t.Error("gopher not encoded using the wide table")
	}
	if len(codes) != 1 || codes[0] != written.Code(gids[0]) {
		t.Errorf("wrong code %v for glyph %d", codes, gids[0])
	}

	gids, text = g.Layout("Hello")
	_, wide, _, err = f.AppendGlyphs(gids, text)
	if err != nil {
		t.Fatal(err)
	}
	if !wide {
		t.Error("compact table used after switching to wide mode")
	}
}
