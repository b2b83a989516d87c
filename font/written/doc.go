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

// Package written decides how glyphs are encoded when text is written to a
// PDF file.
//
// A [Font] keeps up to two encoding tables for one embedded font.  The
// compact table maps glyphs to single-byte codes and has a format-specific
// capacity and admissibility rules, implemented by a [Strategy].  The wide
// table uses two-byte codes, where the code of a glyph is its glyph ID.
// Glyphs are placed into the compact table for as long as the strategy
// accepts them.  Once a batch of glyphs is refused, the wide table is
// created and from then on serves all requests.
//
// Every table which is used receives a PDF object reference from an
// [Allocator], exactly once.  This is the reference under which the
// corresponding font dictionary will later be written.
//
// Diagnostics are reported on the "pdfcore.written" tracer.
package written

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pdfcore.written'.
func tracer() tracing.Trace {
	return tracing.Select("pdfcore.written")
}
