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
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Strategy places glyphs into the compact table of a font.  The rules
// depend on the font format.
type Strategy interface {
	// AddCompact returns the codes for the given glyphs, adding the glyphs
	// which are not yet present to t.  If the glyphs cannot all be
	// represented, AddCompact returns false and leaves t unchanged.
	AddCompact(t *Table, gids []GlyphID, text []rune) ([]Code, bool)
}

// winAnsiCode returns the WinAnsi code of r, after canonical composition.
func winAnsiCode(r rune) (Code, bool) {
	rr := []rune(norm.NFC.String(string(r)))
	if len(rr) != 1 || !unicode.IsGraphic(rr[0]) {
		return 0, false
	}
	b, ok := charmap.Windows1252.EncodeRune(rr[0])
	if !ok {
		return 0, false
	}
	return Code(b), true
}

// winAnsiAssigned reports whether c is the WinAnsi code of a printable
// character.
func winAnsiAssigned(c Code) bool {
	if c > 255 {
		return false
	}
	return unicode.IsGraphic(charmap.Windows1252.DecodeByte(byte(c)))
}

// TrueTypeStrategy is the Strategy for simple TrueType fonts.  Text is
// shown using the WinAnsi encoding, so a glyph can only be placed into the
// compact table if its text has a WinAnsi code, and if this code is not yet
// used by a different glyph.
type TrueTypeStrategy struct{}

// AddCompact implements the [Strategy] interface.
func (TrueTypeStrategy) AddCompact(t *Table, gids []GlyphID, text []rune) ([]Code, bool) {
	codes := make([]Code, len(gids))
	planned := make(map[GlyphID]Entry)
	var order []GlyphID
	taken := make(map[Code]bool)
	for i, gid := range gids {
		if e, ok := t.Lookup(gid); ok {
			codes[i] = e.Code
			continue
		}
		if e, ok := planned[gid]; ok {
			codes[i] = e.Code
			continue
		}

		var c Code
		if gid != 0 {
			var ok bool
			c, ok = winAnsiCode(text[i])
			if !ok || c == 0 || t.CodeUsed(c) || taken[c] {
				return nil, false
			}
		}
		planned[gid] = Entry{Code: c, Text: text[i]}
		order = append(order, gid)
		taken[c] = true
		codes[i] = c
	}

	for _, gid := range order {
		t.Add(gid, planned[gid])
	}
	return codes, true
}
