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
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Object represents an object in a PDF file.  The set of implementations is
// closed: Array, Bool, *Dict, HexString, Integer, Name, Null, Real,
// Reference, *StreamHeader, String and Symbol.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error

	isObject()
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents an real number in a PDF file.
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := w.Write([]byte(s))
	return err
}

// String represents a literal string in a PDF file, after escape sequences
// have been decoded.  The character set encoding, if any, is determined by
// the context.
type String []byte

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	buf := &bytes.Buffer{}
	buf.WriteString("(")
	for _, c := range l {
		switch {
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c == '\\':
			buf.WriteString(`\\`)
		case (c == '(' || c == ')') && !balanced:
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c < 32 || c >= 127:
			fmt.Fprintf(buf, `\%03o`, c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteString(")")

	_, err := w.Write(buf.Bytes())
	return err
}

// HexString represents a hexadecimal string in a PDF file.  The value holds
// the hex digits found between the angle brackets, unchanged.  Use Decode to
// obtain the bytes they represent.
type HexString []byte

// PDF implements the Object interface.
func (x HexString) PDF(w io.Writer) error {
	buf := make([]byte, 0, len(x)+2)
	buf = append(buf, '<')
	buf = append(buf, x...)
	buf = append(buf, '>')
	_, err := w.Write(buf)
	return err
}

// Decode converts pairs of hex digits into bytes.  White space and other
// non-hex characters are ignored.  If the number of digits is odd, the last
// digit is treated as if it were followed by 0.
func (x HexString) Decode() String {
	var res []byte
	var hexVal byte
	first := true
	for _, c := range x {
		var d byte
		if c >= '0' && c <= '9' {
			d = c - '0'
		} else if c >= 'A' && c <= 'F' {
			d = c - 'A' + 10
		} else if c >= 'a' && c <= 'f' {
			d = c - 'a' + 10
		} else {
			continue
		}
		if first {
			hexVal = d
		} else {
			res = append(res, 16*hexVal+d)
		}
		first = !first
	}
	if !first {
		res = append(res, 16*hexVal)
	}
	return String(res)
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	for _, c := range l {
		if IsSpace(c) || IsDelimiter(c) || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Null represents the PDF null object.
type Null struct{}

// PDF implements the Object interface.
func (Null) PDF(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// Array represent an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the Object interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			val = Null{}
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// Dict represent a Dictionary object in a PDF file.
// Entries are kept in the order in which they were added,
// and every key occurs at most once.
//
// The zero value is an empty dictionary, ready to use.
type Dict struct {
	keys []Name
	vals map[Name]Object
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{}
}

// Set adds a new entry to the dictionary.  If the key is already present,
// the dictionary is left unchanged and ErrDuplicateKey is returned.
func (x *Dict) Set(key Name, val Object) error {
	if _, seen := x.vals[key]; seen {
		return ErrDuplicateKey
	}
	if x.vals == nil {
		x.vals = make(map[Name]Object)
	}
	x.keys = append(x.keys, key)
	x.vals[key] = val
	return nil
}

// Get returns the value stored under key, or nil if the key is not present.
func (x *Dict) Get(key Name) Object {
	if x == nil {
		return nil
	}
	return x.vals[key]
}

// Has reports whether the dictionary contains key.
func (x *Dict) Has(key Name) bool {
	if x == nil {
		return false
	}
	_, ok := x.vals[key]
	return ok
}

// Len returns the number of entries.
func (x *Dict) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// Keys returns the keys in insertion order.
func (x *Dict) Keys() []Name {
	if x == nil {
		return nil
	}
	return append([]Name(nil), x.keys...)
}

// All iterates over the entries in insertion order.
func (x *Dict) All() iter.Seq2[Name, Object] {
	return func(yield func(Name, Object) bool) {
		if x == nil {
			return
		}
		for _, key := range x.keys {
			if !yield(key, x.vals[key]) {
				return
			}
		}
	}
}

// Equal reports whether x and other contain the same entries in the same
// order.
func (x *Dict) Equal(other *Dict) bool {
	if x.Len() != other.Len() {
		return false
	} else if x.Len() == 0 {
		return true
	}
	for i, key := range x.keys {
		if other.keys[i] != key {
			return false
		}
		if !Equal(x.vals[key], other.vals[key]) {
			return false
		}
	}
	return true
}

func (x *Dict) String() string {
	res := []string{}
	tp, ok := x.Get("Type").(Name)
	if ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(x.Len())+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the Object interface.
func (x *Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := w.Write([]byte("null"))
		return err
	}

	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}

	for _, name := range x.keys {
		val := x.vals[name]
		if val == nil {
			val = Null{}
		}

		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
type Reference struct {
	Number     uint32
	Generation uint16
}

func (x Reference) String() string {
	res := []string{
		"obj_",
		strconv.FormatUint(uint64(x.Number), 10),
	}
	if x.Generation > 0 {
		res = append(res, "@", strconv.FormatUint(uint64(x.Generation), 10))
	}
	return strings.Join(res, "")
}

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d %d R", x.Number, x.Generation)
	return err
}

// StreamHeader represents the start of a stream object: the stream
// dictionary, together with the file offset of the first byte of stream
// data.  Reading the data itself is left to the caller.
type StreamHeader struct {
	Dict   *Dict
	Offset int64
}

func (x *StreamHeader) String() string {
	return "<Stream, data at byte " + strconv.FormatInt(x.Offset, 10) + ">"
}

// PDF implements the Object interface.  Only the dictionary and the
// "stream" keyword are written.
func (x *StreamHeader) PDF(w io.Writer) error {
	err := x.Dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	return err
}

// Symbol represents a keyword which is not part of any other object, for
// example "obj", "endobj" or an operator in a content stream.  Whether the
// keyword is valid depends on the context.
type Symbol string

// PDF implements the Object interface.
func (x Symbol) PDF(w io.Writer) error {
	_, err := w.Write([]byte(x))
	return err
}

func (Bool) isObject()          {}
func (Integer) isObject()       {}
func (Real) isObject()          {}
func (String) isObject()        {}
func (HexString) isObject()     {}
func (Name) isObject()          {}
func (Null) isObject()          {}
func (Array) isObject()         {}
func (*Dict) isObject()         {}
func (Reference) isObject()     {}
func (*StreamHeader) isObject() {}
func (Symbol) isObject()        {}

// Format returns the PDF representation of obj.  A nil object is formatted
// as "null".
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	if obj == nil {
		obj = Null{}
	}
	err := obj.PDF(buf)
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return buf.String()
}

// Equal reports whether two objects have the same type and value.
// A nil object is considered equal to Null.
func Equal(a, b Object) bool {
	if a == nil {
		a = Null{}
	}
	if b == nil {
		b = Null{}
	}
	switch a := a.(type) {
	case String:
		b, ok := b.(String)
		return ok && bytes.Equal(a, b)
	case HexString:
		b, ok := b.(HexString)
		return ok && bytes.Equal(a, b)
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Dict:
		b, ok := b.(*Dict)
		return ok && a.Equal(b)
	case *StreamHeader:
		b, ok := b.(*StreamHeader)
		return ok && a.Offset == b.Offset && a.Dict.Equal(b.Dict)
	default:
		return a == b
	}
}

// IsSpace reports whether c is a PDF white-space character.
func IsSpace(c byte) bool {
	return isSpace[c]
}

// IsDelimiter reports whether c is a PDF delimiter character.
func IsDelimiter(c byte) bool {
	return isDelimiter[c]
}

var (
	isSpace = [256]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = [256]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
