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

package parser

import (
	"io"

	pdf "seehuhn.de/go/pdfcore"
)

const tokenizerBufSize = 1024

// Tokenizer splits PDF syntax into tokens.
//
// Tokens are returned verbatim: literal strings include their parentheses
// and escape sequences, hex strings their angle brackets, names their
// leading slash and comments their leading percent sign.  After a "stream"
// keyword, the end-of-line marker which follows the keyword is consumed as
// well, so that Pos points to the first byte of stream data.
type Tokenizer struct {
	r         io.Reader
	buf       []byte
	used, pos int

	total int64
}

// NewTokenizer returns a tokenizer which reads from r.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{
		r:   r,
		buf: make([]byte, tokenizerBufSize),
	}
}

// Pos returns the number of bytes consumed so far.
func (s *Tokenizer) Pos() int64 {
	return s.total + int64(s.pos)
}

// NextToken returns the next token.  At the end of input, io.EOF is
// returned.  If the input ends inside a string, the partial token is
// returned together with ErrUnterminated.
func (s *Tokenizer) NextToken() ([]byte, error) {
	err := s.scanBytes(func(c byte) bool {
		return pdf.IsSpace(c)
	})
	if err != nil {
		return nil, err
	}

	buf, err := s.peek(2)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, io.EOF
	}

	var tok []byte
	switch c := buf[0]; {
	case c == '%':
		err = s.scanBytes(func(c byte) bool {
			if c == '\r' || c == '\n' {
				return false
			}
			tok = append(tok, c)
			return true
		})
	case c == '(':
		tok, err = s.readLiteral()
	case c == '<' || c == '>':
		if len(buf) > 1 && buf[1] == c {
			tok = []byte{c, c}
			s.pos += 2
		} else if c == '>' {
			tok = []byte{c}
			s.pos++
		} else {
			tok, err = s.readHex()
		}
	case c == '[' || c == ']' || c == '{' || c == '}' || c == ')':
		tok = []byte{c}
		s.pos++
	default:
		if c == '/' {
			tok = append(tok, c)
			s.pos++
		}
		err = s.scanBytes(func(c byte) bool {
			if pdf.IsSpace(c) || pdf.IsDelimiter(c) {
				return false
			}
			tok = append(tok, c)
			return true
		})
		if err == nil && string(tok) == "stream" {
			err = s.skipEOL()
		}
	}
	if err == ErrUnterminated {
		return tok, err
	} else if err != nil {
		return nil, err
	}
	return tok, nil
}

// readLiteral reads a ()-delimited string, including the delimiters.
// Nested parentheses must be balanced, unless they are escaped.  If the
// input ends before the closing bracket, the partial token is returned
// together with ErrUnterminated.
func (s *Tokenizer) readLiteral() ([]byte, error) {
	tok := []byte{'('}
	s.pos++

	level := 0
	escape := false
	done := false
	err := s.scanBytes(func(c byte) bool {
		if done {
			return false
		}
		tok = append(tok, c)
		switch {
		case escape:
			escape = false
		case c == '\\':
			escape = true
		case c == '(':
			level++
		case c == ')':
			if level > 0 {
				level--
			} else {
				done = true
			}
		}
		return true
	})
	if err == nil && !done {
		err = ErrUnterminated
	}
	return tok, err
}

// readHex reads a <>-delimited string, including the delimiters.
// As for readLiteral, a missing closing bracket gives ErrUnterminated.
func (s *Tokenizer) readHex() ([]byte, error) {
	tok := []byte{'<'}
	s.pos++

	done := false
	err := s.scanBytes(func(c byte) bool {
		if done {
			return false
		}
		tok = append(tok, c)
		done = c == '>'
		return true
	})
	if err == nil && !done {
		err = ErrUnterminated
	}
	return tok, err
}

// skipEOL skips one end-of-line marker, if present.
func (s *Tokenizer) skipEOL() error {
	buf, err := s.peek(2)
	if err != nil {
		return err
	}
	if len(buf) >= 2 && buf[0] == '\r' && buf[1] == '\n' {
		s.pos += 2
	} else if len(buf) >= 1 && buf[0] == '\n' {
		s.pos++
	}
	return nil
}

// refill discards the read part of the buffer and reads as much new data as
// possible.  Once the end of input is reached, s.used will be smaller than
// the buffer size, but no error will be returned.
func (s *Tokenizer) refill() error {
	s.total += int64(s.pos)
	copy(s.buf, s.buf[s.pos:s.used])
	s.used -= s.pos
	s.pos = 0

	n, err := io.ReadFull(s.r, s.buf[s.used:])
	s.used += n

	if err == io.ErrUnexpectedEOF || err == io.EOF {
		err = nil
	}
	return err
}

// peek returns a view of the next n bytes of input.  At the end of input,
// a short buffer is returned without an error.
func (s *Tokenizer) peek(n int) ([]byte, error) {
	if n > tokenizerBufSize {
		panic("peek window too large")
	}

	var err error
	if s.pos+n > s.used {
		err = s.refill()
	}

	if s.pos+n > s.used {
		return s.buf[s.pos:s.used], err
	}
	return s.buf[s.pos : s.pos+n], nil
}

// scanBytes passes input bytes to accept, until either accept returns false
// or the input ends.  Bytes for which accept returns true are consumed.
func (s *Tokenizer) scanBytes(accept func(c byte) bool) error {
	for {
		for s.pos < s.used {
			if !accept(s.buf[s.pos]) {
				return nil
			}
			s.pos++
		}
		err := s.refill()
		if err != nil {
			return err
		}
		if s.used == 0 {
			return nil
		}
	}
}
