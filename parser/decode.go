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
	"strconv"
	"strings"

	pdf "seehuhn.de/go/pdfcore"
)

// decodeLiteral decodes a literal string token, including the enclosing
// parentheses.
//
// Unknown escape sequences are replaced by a zero byte.  Note that ISO
// 32000 asks for the backslash to be ignored instead.
func decodeLiteral(tok string) (pdf.String, error) {
	if len(tok) < 2 || tok[len(tok)-1] != ')' {
		return nil, ErrUnterminated
	}
	body := tok[1 : len(tok)-1]

	res := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			res = append(res, c)
			continue
		}

		i++
		if i >= len(body) {
			return nil, ErrBadEscape
		}
		c = body[i]
		if c >= '0' && c <= '7' {
			val := c - '0'
			for k := 1; k < 3 && i+1 < len(body) && isOctal(body[i+1]); k++ {
				i++
				val = val*8 + (body[i] - '0')
			}
			res = append(res, val)
			continue
		}

		switch c {
		case 'n':
			c = '\n'
		case 'r':
			c = '\r'
		case 't':
			c = '\t'
		case 'b':
			c = '\b'
		case 'f':
			c = '\f'
		case '\\', '(', ')':
			// pass
		default:
			tracer().Infof("unknown escape sequence \\%c in string %q", c, tok)
			c = 0
		}
		res = append(res, c)
	}
	return pdf.String(res), nil
}

// decodeName decodes a name token, including the leading slash.
func decodeName(tok string) (pdf.Name, error) {
	body := tok[1:]
	if strings.IndexByte(body, '#') < 0 {
		return pdf.Name(body), nil
	}

	res := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '#' {
			res = append(res, c)
			continue
		}
		if i+2 >= len(body) {
			return "", ErrBadEscape
		}
		hi, ok1 := hexValue(body[i+1])
		lo, ok2 := hexValue(body[i+2])
		if !ok1 || !ok2 {
			return "", ErrBadEscape
		}
		res = append(res, hi<<4|lo)
		i += 2
	}
	return pdf.Name(res), nil
}

// isNumber checks for an optional sign, followed by digits with at most one
// decimal point.  At least one digit is required.
func isNumber(tok string) bool {
	i := 0
	if tok[0] == '+' || tok[0] == '-' {
		i++
	}
	hasDot := false
	hasDigit := false
	for ; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.' && !hasDot:
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}

// parseNumber converts a token accepted by isNumber into an Integer or Real.
func parseNumber(tok string) (pdf.Object, error) {
	if strings.IndexByte(tok, '.') >= 0 {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, ErrNumberRange
		}
		return pdf.Real(x), nil
	}

	x, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, ErrNumberRange
	}
	return pdf.Integer(x), nil
}

// parseGeneration checks whether tok can be the generation number of a
// reference.
func parseGeneration(tok string) (uint16, bool) {
	if !isNumber(tok) || strings.IndexByte(tok, '.') >= 0 {
		return 0, false
	}
	x, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || x < 0 || x > 0xFFFF {
		return 0, false
	}
	return uint16(x), true
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
