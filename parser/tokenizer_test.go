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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readAll(t *testing.T, s *Tokenizer) []string {
	t.Helper()
	var res []string
	for {
		tok, err := s.NextToken()
		if err == io.EOF {
			return res
		} else if err != nil {
			t.Fatal(err)
		}
		res = append(res, string(tok))
	}
}

func TestTokens(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"", nil},
		{"  \r\n\t ", nil},
		{"1 0 obj << /Type /Page >> endobj",
			[]string{"1", "0", "obj", "<<", "/Type", "/Page", ">>", "endobj"}},
		{"<<>>", []string{"<<", ">>"}},
		{"/A/B", []string{"/A", "/B"}},
		{"(a(b)c)(d\\)e)", []string{"(a(b)c)", "(d\\)e)"}},
		{"(x)y", []string{"(x)", "y"}},
		{"<48 65>[1 2]{}", []string{"<48 65>", "[", "1", "2", "]", "{", "}"}},
		{"% comment\r\n/A", []string{"% comment", "/A"}},
		{"a>b", []string{"a", ">", "b"}},
		{"1.5-2", []string{"1.5-2"}},
		{"/", []string{"/"}},
	}
	for i, test := range cases {
		s := NewTokenizer(strings.NewReader(test.in))
		got := readAll(t, s)
		if d := cmp.Diff(test.out, got); d != "" {
			t.Errorf("%d: %q: unexpected tokens (-want +got):\n%s", i, test.in, d)
		}
	}
}

func TestUnterminated(t *testing.T) {
	cases := []struct {
		in   string
		toks []string
		last string
	}{
		{"(unterminated", nil, "(unterminated"},
		{"(a(b)", nil, "(a(b)"},
		{"(d\\)", nil, "(d\\)"},
		{"/A <4142", []string{"/A"}, "<4142"},
		{"[(x)(", []string{"[", "(x)"}, "("},
	}
	for _, test := range cases {
		s := NewTokenizer(strings.NewReader(test.in))
		var got []string
		for {
			tok, err := s.NextToken()
			if err == ErrUnterminated {
				if string(tok) != test.last {
					t.Errorf("%q: partial token %q, expected %q", test.in, tok, test.last)
				}
				break
			} else if err != nil {
				t.Fatalf("%q: expected ErrUnterminated, got %v", test.in, err)
			}
			got = append(got, string(tok))
		}
		if d := cmp.Diff(test.toks, got); d != "" {
			t.Errorf("%q: unexpected tokens (-want +got):\n%s", test.in, d)
		}
	}
}

func TestLongToken(t *testing.T) {
	name := "/" + strings.Repeat("x", 3*tokenizerBufSize+7)
	in := "[" + name + " " + name + "]"
	s := NewTokenizer(strings.NewReader(in))
	got := readAll(t, s)
	want := []string{"[", name, name, "]"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if s.Pos() != int64(len(in)) {
		t.Errorf("wrong position %d != %d", s.Pos(), len(in))
	}
}

func TestStreamPos(t *testing.T) {
	cases := []struct {
		in  string
		pos int64
	}{
		{"<< >>\nstream\r\nDATA", 14},
		{"<< >>\nstream\nDATA", 13},
		{"<< >>\nstream\rDATA", 12},
		{"<< >>\nstream", 12},
	}
	for _, test := range cases {
		s := NewTokenizer(strings.NewReader(test.in))
		for {
			tok, err := s.NextToken()
			if err != nil {
				t.Fatalf("%q: %v", test.in, err)
			}
			if string(tok) == "stream" {
				break
			}
		}
		if s.Pos() != test.pos {
			t.Errorf("%q: data starts at %d, not %d", test.in, s.Pos(), test.pos)
		}
	}
}
