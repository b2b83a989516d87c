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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Null{}, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), `(\000)`},
		{String("line\n"), `(line\n)`},
		{HexString("48656C6C6F"), "<48656C6C6F>"},
		{Name("A#B"), "/A#23B"},
		{Name("F# minor"), "/F#23#20minor"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Reference{Number: 12, Generation: 1}, "12 1 R"},
		{Symbol("endobj"), "endobj"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("string wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestHexDecode(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"48656C6C6F", "Hello"},
		{"68656c6c6f", "hello"},
		{"68 65 6C 6C 6F", "hello"},
		{"68656C7", "help"},
	}
	for _, test := range cases {
		out := HexString(test.in).Decode()
		if string(out) != test.out {
			t.Errorf("%q: got %q, expected %q", test.in, out, test.out)
		}
	}
}

func TestDictOrder(t *testing.T) {
	d := NewDict()
	for i, key := range []Name{"Z", "A", "M"} {
		err := d.Set(key, Integer(i))
		if err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff([]Name{"Z", "A", "M"}, d.Keys()); diff != "" {
		t.Errorf("wrong key order (-want +got):\n%s", diff)
	}

	var seen []Name
	for key := range d.All() {
		seen = append(seen, key)
		if key == "A" {
			break
		}
	}
	if diff := cmp.Diff([]Name{"Z", "A"}, seen); diff != "" {
		t.Errorf("wrong iteration (-want +got):\n%s", diff)
	}

	if got := Format(d); got != "<<\n/Z 0\n/A 1\n/M 2\n>>" {
		t.Errorf("wrong output %q", got)
	}
}

func TestDictDuplicate(t *testing.T) {
	d := &Dict{}
	err := d.Set("A", Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	err = d.Set("A", Integer(2))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if d.Len() != 1 || d.Get("A") != Integer(1) {
		t.Errorf("dictionary was modified: %s", Format(d))
	}
}

func TestDictNil(t *testing.T) {
	d := NewDict()
	d.Set("A", nil)
	d.Set("B", Integer(1))
	if got := Format(d); got != "<<\n/A null\n/B 1\n>>" {
		t.Errorf("wrong output %q", got)
	}
	if d.Len() != 2 || !d.Has("A") {
		t.Errorf("entry with nil value lost")
	}

	want := NewDict()
	want.Set("A", Null{})
	want.Set("B", Integer(1))
	if !d.Equal(want) {
		t.Error("nil value does not compare equal to null")
	}
}

func TestEqual(t *testing.T) {
	d1 := NewDict()
	d1.Set("A", Array{Integer(1), String("x")})
	d2 := NewDict()
	d2.Set("A", Array{Integer(1), String("x")})
	d3 := NewDict()
	d3.Set("A", Array{Integer(1), HexString("x")})

	if !Equal(d1, d2) {
		t.Error("equal dictionaries compare unequal")
	}
	if Equal(d1, d3) {
		t.Error("String and HexString compare equal")
	}
	if !Equal(nil, Null{}) {
		t.Error("nil and Null compare unequal")
	}
	if Equal(Integer(1), Real(1)) {
		t.Error("Integer and Real compare equal")
	}
	if diff := cmp.Diff(&StreamHeader{Dict: d1, Offset: 7}, &StreamHeader{Dict: d2, Offset: 7}); diff != "" {
		t.Errorf("stream headers differ:\n%s", diff)
	}
}
