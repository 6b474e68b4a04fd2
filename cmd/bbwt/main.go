// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bbwt computes the bijective Burrows-Wheeler transform (or its
// inverse) of a file, writing the result to another file.
package main

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/bwt-tools/bbwt/bbwt"
)

var (
	app = kingpin.New("bbwt", "Compute the bijective Burrows-Wheeler transform of a file.")

	inverse = app.Flag("inverse", "compute the inverse transform instead of the forward transform").
		Short('d').Bool()
	inPath  = app.Arg("input", "input file").Required().String()
	outPath = app.Arg("output", "output file").Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(*inPath, *outPath, *inverse); err != nil {
		color.Red("bbwt: %v", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, inverse bool) error {
	data, err := ioutil.ReadFile(inPath)
	if err != nil {
		return errors.Wrap(err, "unable to read input file")
	}

	out := make([]byte, len(data))
	start := time.Now()

	var t bbwt.Transform
	if inverse {
		err = t.Inverse(data, out)
	} else {
		err = t.Forward(data, out)
	}
	if err != nil {
		return errors.Wrap(err, "transform failed")
	}
	elapsed := time.Since(start)

	if err := ioutil.WriteFile(outPath, out, 0644); err != nil {
		return errors.Wrap(err, "unable to write output file")
	}

	verb := "Transformed"
	if inverse {
		verb = "Inverse-transformed"
	}
	color.Green("%s %s in %s", verb, humanize.Bytes(uint64(len(data))), elapsed)
	return nil
}
