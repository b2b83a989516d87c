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
	"errors"
	"io"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	pdf "seehuhn.de/go/pdfcore"
)

// TokenSource is the input of a Parser.
type TokenSource interface {
	// NextToken returns the next token.  At the end of input, io.EOF is
	// returned.  A string which is cut off by the end of input is
	// reported as ErrUnterminated.
	NextToken() ([]byte, error)

	// Pos returns the byte offset directly after the last token returned.
	Pos() int64
}

// Options can be used to control the behaviour of a Parser.
type Options struct {
	// MaxDepth is the maximal nesting depth of arrays and dictionaries.
	// If this is zero, DefaultMaxDepth is used.
	MaxDepth int
}

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

var (
	// ErrUnexpectedEnd indicates that the input ended inside an array or
	// dictionary.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrUnterminated indicates a string without its closing delimiter.
	ErrUnterminated = errors.New("unterminated string")

	// ErrBadEscape indicates an invalid escape sequence in a name or string.
	ErrBadEscape = errors.New("invalid escape sequence")

	// ErrNotAName indicates a dictionary key which is not a name.
	ErrNotAName = errors.New("dictionary key is not a name")

	// ErrTooDeep indicates that arrays and dictionaries are nested too deeply.
	ErrTooDeep = errors.New("objects nested too deeply")

	// ErrNumberRange indicates an integer which does not fit into 64 bits.
	ErrNumberRange = errors.New("number out of range")
)

// Parser reads PDF objects from a TokenSource.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	src      TokenSource
	buf      *doublylinkedlist.List
	depth    int
	maxDepth int
}

// NewParser returns a parser which reads tokens from src.
func NewParser(src TokenSource, opt *Options) *Parser {
	maxDepth := DefaultMaxDepth
	if opt != nil && opt.MaxDepth > 0 {
		maxDepth = opt.MaxDepth
	}
	return &Parser{
		src:      src,
		buf:      doublylinkedlist.New(),
		maxDepth: maxDepth,
	}
}

// Reset discards all buffered tokens and continues reading from src.
func (p *Parser) Reset(src TokenSource) {
	p.src = src
	p.buf.Clear()
	p.depth = 0
}

// ParseObject reads the next object.
//
// At the end of input, io.EOF is returned.  If the input is malformed,
// a *pdf.MalformedFileError is returned and no object is produced.  Keywords
// which do not start an object are returned as pdf.Symbol values.
func (p *Parser) ParseObject() (pdf.Object, error) {
	p.depth = 0
	return p.parseObject()
}

// ParseAll reads objects until the end of input.  If an object cannot be
// parsed, the objects read so far are returned together with the error.
func (p *Parser) ParseAll() ([]pdf.Object, error) {
	var res []pdf.Object
	for {
		obj, err := p.ParseObject()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return res, err
		}
		res = append(res, obj)
	}
}

func (p *Parser) parseObject() (pdf.Object, error) {
	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}

	switch {
	case tok == "true" || tok == "false":
		return pdf.Bool(tok == "true"), nil
	case tok[0] == '(':
		s, err := decodeLiteral(tok)
		if err != nil {
			return nil, p.fail(err, tok)
		}
		return s, nil
	case tok[0] == '<' && tok != "<<":
		if len(tok) < 2 || tok[len(tok)-1] != '>' {
			return nil, p.fail(ErrUnterminated, tok)
		}
		return pdf.HexString(tok[1 : len(tok)-1]), nil
	case tok == "null":
		return pdf.Null{}, nil
	case tok[0] == '/':
		name, err := decodeName(tok)
		if err != nil {
			return nil, p.fail(err, tok)
		}
		return name, nil
	case isNumber(tok):
		obj, err := parseNumber(tok)
		if err != nil {
			return nil, p.fail(err, tok)
		}
		if x, isInt := obj.(pdf.Integer); isInt && x > 0 {
			return p.tryReference(x)
		}
		return obj, nil
	case tok == "[":
		return p.parseArray()
	case tok == "<<":
		dict, err := p.parseDict()
		if err != nil {
			return nil, err
		}
		return p.checkStream(dict)
	default:
		return pdf.Symbol(tok), nil
	}
}

// tryReference checks whether the positive integer x is the start of an
// indirect reference "x gen R".  If not, all tokens read for the check are
// put back and x is returned.
func (p *Parser) tryReference(x pdf.Integer) (pdf.Object, error) {
	if x > 0xFFFF_FFFF {
		return x, nil
	}

	genTok, err := p.nextToken()
	if err == io.EOF {
		return x, nil
	} else if err != nil {
		return nil, err
	}
	gen, isGen := parseGeneration(genTok)
	if !isGen {
		p.saveToken(genTok)
		return x, nil
	}

	keyword, err := p.nextToken()
	if err == io.EOF {
		p.saveToken(genTok)
		return x, nil
	} else if err != nil {
		return nil, err
	}
	if keyword != "R" {
		p.saveToken(genTok)
		p.saveToken(keyword)
		return x, nil
	}

	return pdf.Reference{Number: uint32(x), Generation: gen}, nil
}

func (p *Parser) parseArray() (pdf.Object, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.fail(ErrTooDeep, "[")
	}

	var array pdf.Array
	for {
		tok, err := p.nextToken()
		if err == io.EOF {
			return nil, p.fail(ErrUnexpectedEnd, "[")
		} else if err != nil {
			return nil, err
		}
		if tok == "]" {
			break
		}
		p.returnToken(tok)

		obj, err := p.parseObject()
		if err == io.EOF {
			return nil, p.fail(ErrUnexpectedEnd, "[")
		} else if err != nil {
			tracer().Debugf("array member %d cannot be parsed", len(array))
			return nil, err
		}
		array = append(array, obj)
	}
	if array == nil {
		array = pdf.Array{}
	}
	return array, nil
}

func (p *Parser) parseDict() (*pdf.Dict, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.fail(ErrTooDeep, "<<")
	}

	dict := pdf.NewDict()
	for {
		tok, err := p.nextToken()
		if err == io.EOF {
			return nil, p.fail(ErrUnexpectedEnd, "<<")
		} else if err != nil {
			return nil, err
		}
		if tok == ">>" {
			break
		}
		p.returnToken(tok)

		keyObj, err := p.parseObject()
		if err == io.EOF {
			return nil, p.fail(ErrUnexpectedEnd, "<<")
		} else if err != nil {
			return nil, err
		}
		key, isName := keyObj.(pdf.Name)
		if !isName {
			return nil, p.fail(ErrNotAName, pdf.Format(keyObj))
		}
		if dict.Has(key) {
			return nil, p.fail(pdf.ErrDuplicateKey, pdf.Format(key))
		}

		val, err := p.parseObject()
		if err == io.EOF {
			return nil, p.fail(ErrUnexpectedEnd, pdf.Format(key))
		} else if err != nil {
			return nil, err
		}

		err = dict.Set(key, val)
		if err != nil {
			return nil, p.fail(err, pdf.Format(key))
		}
	}
	return dict, nil
}

// checkStream looks at the token following a dictionary.  If this is the
// keyword "stream", the dictionary is turned into a stream header.
func (p *Parser) checkStream(dict *pdf.Dict) (pdf.Object, error) {
	tok, err := p.nextToken()
	if err == io.EOF {
		return dict, nil
	} else if err != nil {
		return nil, err
	}
	if tok != "stream" {
		p.saveToken(tok)
		return dict, nil
	}
	return &pdf.StreamHeader{
		Dict:   dict,
		Offset: p.src.Pos(),
	}, nil
}

// nextToken returns the next token, taking buffered tokens first.
// Comments are skipped.
func (p *Parser) nextToken() (string, error) {
	if !p.buf.Empty() {
		tok, _ := p.buf.Get(0)
		p.buf.Remove(0)
		return tok.(string), nil
	}

	for {
		tok, err := p.src.NextToken()
		if errors.Is(err, ErrUnterminated) {
			return "", p.fail(err, string(tok))
		} else if err != nil {
			return "", err
		}
		if len(tok) == 0 || tok[0] == '%' {
			continue
		}
		return string(tok), nil
	}
}

// saveToken appends a token to the end of the buffer.  This is used to
// replay a sequence of look-ahead tokens in their original order.  At most
// one token is buffered when look-ahead starts, and this token is the first
// one read, so the buffer is empty again by the time tokens are saved.
func (p *Parser) saveToken(tok string) {
	p.buf.Append(tok)
}

// returnToken puts a single token back at the front of the buffer.
func (p *Parser) returnToken(tok string) {
	p.buf.Prepend(tok)
}

func (p *Parser) fail(err error, tok string) error {
	pos := p.src.Pos()
	tracer().Errorf("cannot parse %q at byte %d: %v", tok, pos, err)
	return &pdf.MalformedFileError{Pos: pos, Err: err}
}
