// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bbwt implements the bijective Burrows-Wheeler transform: unlike
// the classical transform, it requires no primary index to invert, since
// every byte string is the transform of exactly one input string of the
// same length. It is intended as a building block for entropy coders and
// compression pipelines, not as a general-purpose string search index.
package bbwt

// Error is the error type returned by this package. Such errors are
// permanent and indicate misuse of the API, not corrupt or unlucky input.
type Error string

func (e Error) Error() string { return "bbwt: " + string(e) }

// ErrLength reports a mismatch between the input and output buffer sizes
// passed to Forward or Inverse.
const ErrLength = Error("mismatched buffer length")

// AlphabetSize is the number of distinct symbol values the transform
// operates over. The transform is defined for bytes, so this is always
// the byte range.
const AlphabetSize = 256
