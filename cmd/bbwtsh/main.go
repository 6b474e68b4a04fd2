// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bbwtsh is an interactive shell for exploring the bijective
// Burrows-Wheeler transform: each line of standard input is echoed back
// as its circular suffix array and its forward/inverse round trip.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/bwt-tools/bbwt/bbwt"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("bbwtsh - enter a line of text, or an empty line to quit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}
		process(line)
	}
}

func process(line string) {
	data := []byte(line)

	csa := bbwt.CircularSuffixArray(data)
	color.Cyan("csa:  %v", csa)

	fwd := make([]byte, len(data))
	if err := bbwt.Forward(data, fwd); err != nil {
		color.Red("bbwt: %v", err)
		return
	}
	color.Yellow("bbwt: %q", fwd)

	rev := make([]byte, len(data))
	if err := bbwt.Inverse(fwd, rev); err != nil {
		color.Red("unbbwt: %v", err)
		return
	}

	if string(rev) == line {
		color.Green("unbbwt: %q (round trip OK)", rev)
	} else {
		color.Red("unbbwt: %q (round trip FAILED, want %q)", rev, line)
	}
}
