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

// Package parser reads PDF objects from a stream of tokens.
//
// A [Tokenizer] splits PDF syntax into tokens, and a [Parser] assembles the
// tokens into [pdf.Object] values.  The parser keeps its own pushback
// buffer, so that the sequence "12 0 R" can be recognised as a reference
// while "12 /Name" yields an integer followed by a name.
//
// Parse failures are returned as *pdf.MalformedFileError and are also
// reported on the "pdfcore.parser" tracer.
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pdfcore.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pdfcore.parser")
}
