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

// Package pdf implements the object model used for writing PDF files.
//
// The following types implement the native PDF object types.
// All of these implement the `pdf.Object` interface:
//
//	Array
//	Bool
//	*Dict
//	HexString
//	Integer
//	Name
//	Null
//	Real
//	Reference
//	*StreamHeader
//	String
//	Symbol
//
// Objects can be read from PDF syntax using the parser in
// [seehuhn.de/go/pdfcore/parser].  A [Writer] can be used to write objects
// to a new PDF file:
//
//	w, err := pdf.NewWriter(out, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	catalogRef := w.Alloc()
//
//	... write objects using w.WriteIndirect() ...
//
//	err = w.Close(catalogRef)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pdf
