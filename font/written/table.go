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

package written

import (
	"cmp"

	"golang.org/x/exp/slices"

	pdf "seehuhn.de/go/pdfcore"
)

// GlyphID identifies a glyph inside a font file.
type GlyphID uint32

// Code is a character code in a PDF string.  Compact tables only use codes
// in the range 0, ..., 255.
type Code uint16

// Entry describes how a glyph is encoded.  Text is the character the glyph
// was requested for.
type Entry struct {
	Code Code
	Text rune
}

// GlyphEntry is an Entry together with its glyph.
type GlyphEntry struct {
	GID GlyphID
	Entry
}

// Table maps glyphs to character codes.
type Table struct {
	entries map[GlyphID]Entry
	codes   map[Code]GlyphID

	ref    pdf.Reference
	hasRef bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[GlyphID]Entry),
		codes:   make(map[Code]GlyphID),
	}
}

// Lookup returns the entry for a glyph.
func (t *Table) Lookup(gid GlyphID) (Entry, bool) {
	e, ok := t.entries[gid]
	return e, ok
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// CodeUsed reports whether any glyph in the table is encoded as c.
func (t *Table) CodeUsed(c Code) bool {
	_, used := t.codes[c]
	return used
}

// Add records the encoding of a glyph.  If the glyph is already present,
// its entry is replaced.
func (t *Table) Add(gid GlyphID, e Entry) {
	if old, ok := t.entries[gid]; ok && t.codes[old.Code] == gid {
		delete(t.codes, old.Code)
	}
	t.entries[gid] = e
	t.codes[e.Code] = gid
}

// Entries returns the contents of the table, ordered by glyph ID.
func (t *Table) Entries() []GlyphEntry {
	res := make([]GlyphEntry, 0, len(t.entries))
	for gid, e := range t.entries {
		res = append(res, GlyphEntry{GID: gid, Entry: e})
	}
	slices.SortFunc(res, func(a, b GlyphEntry) int {
		return cmp.Compare(a.GID, b.GID)
	})
	return res
}

// codesFor returns the codes of the given glyphs, if all of them are in the
// table.
func (t *Table) codesFor(gids []GlyphID) ([]Code, bool) {
	codes := make([]Code, len(gids))
	for i, gid := range gids {
		e, ok := t.entries[gid]
		if !ok {
			return nil, false
		}
		codes[i] = e.Code
	}
	return codes, true
}

// reference returns the object reference of the table, allocating it on
// first use.
func (t *Table) reference(alloc Allocator) pdf.Reference {
	if !t.hasRef {
		t.ref = alloc.Alloc()
		t.hasRef = true
	}
	return t.ref
}
