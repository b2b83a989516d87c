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
	"fmt"
	"math/bits"

	"seehuhn.de/go/postscript/type1/names"
)

// SimpleOptions can be used to configure a SimpleStrategy.
type SimpleOptions struct {
	// MaxCodes is the maximal number of glyphs, other than .notdef, which
	// can be placed into the compact table.  Values outside the range
	// 1, ..., 255 are replaced by 255.
	MaxCodes int
}

// SimpleStrategy is the Strategy for simple CFF and Type 1 fonts.  These
// fonts can use an arbitrary encoding, so glyphs are only refused once all
// codes are in use.  Code 0 is reserved for the .notdef glyph.
//
// SimpleStrategy also chooses a unique glyph name for every glyph, for use
// in the font's encoding.
type SimpleStrategy struct {
	maxCodes int

	glyphName     map[GlyphID]string
	glyphNameUsed map[string]bool
}

// NewSimpleStrategy returns a new SimpleStrategy.  A SimpleStrategy keeps
// state for one table and must not be shared between fonts.
func NewSimpleStrategy(opt *SimpleOptions) *SimpleStrategy {
	maxCodes := 255
	if opt != nil && opt.MaxCodes > 0 && opt.MaxCodes < 255 {
		maxCodes = opt.MaxCodes
	}
	s := &SimpleStrategy{
		maxCodes:      maxCodes,
		glyphName:     make(map[GlyphID]string),
		glyphNameUsed: make(map[string]bool),
	}
	s.glyphName[0] = ".notdef"
	s.glyphNameUsed[".notdef"] = true
	return s
}

// AddCompact implements the [Strategy] interface.
//
// Where possible, a glyph is given the WinAnsi code of its text.
// Otherwise, a code which is not used by WinAnsi is preferred.
func (s *SimpleStrategy) AddCompact(t *Table, gids []GlyphID, text []rune) ([]Code, bool) {
	used := 0
	for c := Code(1); c < 256; c++ {
		if t.CodeUsed(c) {
			used++
		}
	}

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
			if used >= s.maxCodes {
				return nil, false
			}
			isFree := func(c Code) bool {
				return !t.CodeUsed(c) && !taken[c]
			}
			c = chooseCode(text[i], isFree)
			used++
		}
		planned[gid] = Entry{Code: c, Text: text[i]}
		order = append(order, gid)
		taken[c] = true
		codes[i] = c
	}

	for _, gid := range order {
		e := planned[gid]
		t.Add(gid, e)
		s.makeGlyphName(gid, e.Text)
	}
	return codes, true
}

// chooseCode selects a free code in the range 1, ..., 255 for a glyph
// representing r.  At least one free code must exist.
func chooseCode(r rune, isFree func(Code) bool) Code {
	if c, ok := winAnsiCode(r); ok && c != 0 && isFree(c) {
		return c
	}

	bestScore := -1
	var bestCode Code
	for c := Code(1); c < 256; c++ {
		if !isFree(c) {
			continue
		}
		score := 0
		if !winAnsiAssigned(c) {
			score += 100
		} else if c != 32 {
			score += 10
		}
		score += bits.TrailingZeros16(uint16(r) ^ uint16(c))
		if score > bestScore {
			bestScore = score
			bestCode = c
		}
	}
	return bestCode
}

// makeGlyphName allocates a unique glyph name for gid.
func (s *SimpleStrategy) makeGlyphName(gid GlyphID, r rune) string {
	if name, ok := s.glyphName[gid]; ok {
		return name
	}

	var glyphName string
	if r > 0 {
		glyphName = names.FromUnicode(string(r))
	}

	alt := 0
	base := glyphName
nameLoop:
	for {
		if names.IsValid(glyphName) && !s.glyphNameUsed[glyphName] {
			break
		}
		if len(base) == 0 || len(glyphName) > 31 {
			for idx := len(s.glyphNameUsed); idx >= 0; idx-- {
				glyphName = fmt.Sprintf("orn%03d", idx)
				if !s.glyphNameUsed[glyphName] {
					break nameLoop
				}
			}
		}
		alt++
		glyphName = fmt.Sprintf("%s.alt%d", base, alt)
	}
	s.glyphName[gid] = glyphName
	s.glyphNameUsed[glyphName] = true
	return glyphName
}

// GlyphName returns the name chosen for a glyph.  The result is the empty
// string if the glyph has not been placed into the compact table.
func (s *SimpleStrategy) GlyphName(gid GlyphID) string {
	return s.glyphName[gid]
}

// Encoding returns the glyph names for all codes in use, for example to
// construct the Differences array of a font's encoding dictionary.
func (s *SimpleStrategy) Encoding(t *Table) map[Code]string {
	res := make(map[Code]string)
	for _, ge := range t.Entries() {
		if name, ok := s.glyphName[ge.GID]; ok {
			res[ge.Code] = name
		}
	}
	return res
}
