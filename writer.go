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
	"errors"
	"fmt"
	"io"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// Version is the PDF version written into the file header.
	// The default is PDF 1.7.
	Version Version
}

// Writer represents a PDF file open for writing.
//
// Object numbers are handed out by Alloc.  They start at 1, increase
// strictly and are never reused.
type Writer struct {
	Version Version

	w       *posWriter
	xref    map[uint32]int64
	nextRef uint32
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_7
	}
	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		xref:    make(map[uint32]int64),
		nextRef: 1,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	res := Reference{
		Number:     pdf.nextRef,
		Generation: 0,
	}
	pdf.nextRef++
	return res
}

// WriteIndirect writes obj to the PDF file as the indirect object ref.
// The reference must have been obtained from Alloc, and every object can
// only be written once.
func (pdf *Writer) WriteIndirect(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	if ref.Number == 0 || ref.Number >= pdf.nextRef {
		return fmt.Errorf("reference %s was not allocated", ref)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	if err != nil {
		return err
	}
	if obj == nil {
		obj = Null{}
	}
	err = obj.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return err
	}

	pdf.xref[ref.Number] = pos
	return nil
}

// Close writes the cross-reference table and the trailer.  Allocated
// objects which were never written are marked as free.  If the underlying
// io.Writer has a Close() method, it is called as well.
func (pdf *Writer) Close(catalog Reference) error {
	if pdf.w == nil {
		return errClosed
	}

	xRefPos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for i := uint32(1); i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = pdf.w.Write([]byte("0000000000 00001 f\r\n"))
		}
		if err != nil {
			return err
		}
	}

	trailer := NewDict()
	err = trailer.Set("Size", Integer(pdf.nextRef))
	if err != nil {
		return err
	}
	err = trailer.Set("Root", catalog)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	var closer io.Closer
	if c, ok := pdf.w.w.(io.Closer); ok {
		closer = c
	}
	// make sure we don't accidentally write beyond the end of file.
	pdf.w = nil
	if closer != nil {
		return closer.Close()
	}
	return nil
}

// Counter allocates object numbers without writing a file.
// The zero value is ready to use; the first number handed out is 1.
type Counter struct {
	last uint32
}

// Alloc allocates an object number for an indirect object.
func (c *Counter) Alloc() Reference {
	c.last++
	return Reference{Number: c.last}
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

var errClosed = errors.New("pdf writer already closed")
