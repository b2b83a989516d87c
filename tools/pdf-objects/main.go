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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	pdf "seehuhn.de/go/pdfcore"
	"seehuhn.de/go/pdfcore/parser"
	"seehuhn.de/go/pdfcore/tools/internal/buildinfo"
)

var (
	stopAtStream = flag.Bool("stop-at-stream", false, "stop at the first stream instead of skipping its data")
	maxDepth     = flag.Int("max-depth", parser.DefaultMaxDepth, "maximal nesting depth of arrays and dictionaries")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-objects \u2014 list the top-level objects in PDF syntax\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-objects"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-objects [options] [file.pdf]\n\n")
		fmt.Fprintf(os.Stderr, "If no file is given, input is read from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) error {
	var data []byte
	var err error
	if fname == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(fname)
	}
	if err != nil {
		return err
	}

	showIndex := term.IsTerminal(int(os.Stdout.Fd()))

	opt := &parser.Options{MaxDepth: *maxDepth}
	var base int64
	p := parser.NewParser(parser.NewTokenizer(bytes.NewReader(data)), opt)
	for i := 0; ; i++ {
		obj, err := p.ParseObject()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if showIndex {
			fmt.Printf("%5d  ", i)
		}
		stm, isStream := obj.(*pdf.StreamHeader)
		if !isStream {
			fmt.Println(pdf.Format(obj))
			continue
		}

		start := base + stm.Offset
		fmt.Printf("%s\n%% stream data at byte %d\n", pdf.Format(stm.Dict), start)
		if *stopAtStream {
			return nil
		}

		length, ok := stm.Dict.Get("Length").(pdf.Integer)
		if !ok || length < 0 || start+int64(length) > int64(len(data)) {
			return fmt.Errorf("cannot skip data of stream at byte %d", start)
		}
		base = start + int64(length)
		p.Reset(parser.NewTokenizer(bytes.NewReader(data[base:])))
	}
}
