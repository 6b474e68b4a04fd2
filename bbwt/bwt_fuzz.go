// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package bbwt

// ForwardBWT is an exported hook for go-fuzz: it round-trips data through
// Forward and Inverse and panics if the result does not match.
func ForwardBWT(data []byte) int {
	fwd := make([]byte, len(data))
	if err := Forward(data, fwd); err != nil {
		return 0
	}

	rev := make([]byte, len(data))
	if err := Inverse(fwd, rev); err != nil {
		panic(err)
	}
	if string(rev) != string(data) {
		panic("bbwt: round-trip mismatch")
	}
	return 1
}
