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
	"errors"

	pdf "seehuhn.de/go/pdfcore"
)

// Allocator hands out references for new PDF objects.  The returned
// references must be distinct.  Both *pdf.Writer and *pdf.Counter implement
// this interface.
type Allocator interface {
	Alloc() pdf.Reference
}

// Mode describes which tables a Font may use.
type Mode int

const (
	// ModeCompact is the initial mode.  Glyphs are placed into the compact
	// table whenever the strategy accepts them.
	ModeCompact Mode = iota

	// ModeWide is entered the first time the strategy refuses a batch of
	// glyphs.  All later requests are served by the wide table.
	ModeWide
)

func (m Mode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModeWide:
		return "wide"
	default:
		return "invalid"
	}
}

// ErrLengthMismatch is returned if the glyph and text slices passed to
// AppendGlyphs have different lengths.
var ErrLengthMismatch = errors.New("glyphs and text have different length")

// Run is a sequence of glyphs together with the text they represent.
type Run struct {
	GIDs []GlyphID
	Text []rune
}

// Font records which glyphs of one font have been used, and how they are
// encoded.
//
// A Font is not safe for concurrent use.
type Font struct {
	alloc    Allocator
	strategy Strategy

	mode    Mode
	compact *Table
	wide    *Table
}

// New creates a Font which allocates references using alloc and places
// glyphs into the compact table using strategy.
func New(alloc Allocator, strategy Strategy) *Font {
	return &Font{
		alloc:    alloc,
		strategy: strategy,
	}
}

// AppendGlyphs encodes a sequence of glyphs.  text[i] is the character
// represented by gids[i].
//
// The returned codes all belong to the same table.  If wide is true, the
// codes are two-byte codes for the wide table, otherwise they are
// single-byte codes for the compact table.  ref is the reference of the
// font dictionary the codes refer to.
//
// Calling AppendGlyphs again with glyphs which are already known does not
// modify any table.
func (f *Font) AppendGlyphs(gids []GlyphID, text []rune) (codes []Code, wide bool, ref pdf.Reference, err error) {
	if len(gids) != len(text) {
		return nil, false, pdf.Reference{}, ErrLengthMismatch
	}

	if f.wide != nil {
		if codes, ok := f.wide.codesFor(gids); ok {
			return codes, true, f.wide.ref, nil
		}
	}
	if f.compact != nil && f.mode == ModeCompact {
		if codes, ok := f.compact.codesFor(gids); ok {
			return codes, false, f.compact.reference(f.alloc), nil
		}
	}
	if f.wide != nil {
		return f.addWide(gids, text), true, f.wide.ref, nil
	}

	if f.compact == nil {
		f.compact = NewTable()
	}
	codes, ok := f.strategy.AddCompact(f.compact, gids, text)
	if ok {
		return codes, false, f.compact.reference(f.alloc), nil
	}

	tracer().Debugf("compact table refused %d glyphs, switching to wide mode", len(gids))
	f.wide = NewTable()
	f.mode = ModeWide
	codes = f.addWide(gids, text)
	return codes, true, f.wide.reference(f.alloc), nil
}

// AppendRuns encodes several runs of glyphs at once.  All runs are encoded
// using the same table, so that they can be shown with a single font.
func (f *Font) AppendRuns(runs []Run) ([][]Code, bool, pdf.Reference, error) {
	var gids []GlyphID
	var text []rune
	for _, run := range runs {
		if len(run.GIDs) != len(run.Text) {
			return nil, false, pdf.Reference{}, ErrLengthMismatch
		}
		gids = append(gids, run.GIDs...)
		text = append(text, run.Text...)
	}

	codes, wide, ref, err := f.AppendGlyphs(gids, text)
	if err != nil {
		return nil, false, pdf.Reference{}, err
	}

	res := make([][]Code, len(runs))
	for i, run := range runs {
		res[i] = codes[:len(run.GIDs):len(run.GIDs)]
		codes = codes[len(run.GIDs):]
	}
	return res, wide, ref, nil
}

// addWide adds glyphs to the wide table, using the glyph ID as the code.
func (f *Font) addWide(gids []GlyphID, text []rune) []Code {
	t := f.wide
	if t.Len() == 0 {
		t.Add(0, Entry{Code: 0})
	}

	codes := make([]Code, len(gids))
	for i, gid := range gids {
		if e, ok := t.Lookup(gid); ok {
			codes[i] = e.Code
			continue
		}
		if gid > 0xFFFF {
			tracer().Infof("glyph %d does not fit into a two-byte code, using %d",
				gid, Code(gid))
		}
		e := Entry{Code: Code(gid), Text: text[i]}
		t.Add(gid, e)
		codes[i] = e.Code
	}
	return codes
}

// Mode returns the current mode of the font.
func (f *Font) Mode() Mode {
	return f.mode
}

// Entries returns the contents of the wide or of the compact table,
// ordered by glyph ID.  The result is nil if the table does not exist.
func (f *Font) Entries(wide bool) []GlyphEntry {
	t := f.table(wide)
	if t == nil {
		return nil
	}
	return t.Entries()
}

// Reference returns the reference allocated for the wide or for the compact
// table.  The second return value is false if no reference has been
// allocated.
func (f *Font) Reference(wide bool) (pdf.Reference, bool) {
	t := f.table(wide)
	if t == nil || !t.hasRef {
		return pdf.Reference{}, false
	}
	return t.ref, true
}

func (f *Font) table(wide bool) *Table {
	if wide {
		return f.wide
	}
	return f.compact
}
