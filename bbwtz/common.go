// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bbwtz implements a small block-based compressor built on top of
// the bijective Burrows-Wheeler transform: BBWT, then move-to-front plus
// run-length coding, then a pluggable entropy backend, the same pipeline
// shape bzip2 uses but without a primary index to carry per block, since
// the bijective transform needs none.
package bbwtz

import (
	"hash/crc32"
	"runtime"

	"github.com/dsnet/golib/hashmerge"
)

const (
	hdrMagic = "BBZ"

	// defaultBlockSize bounds how much input each block holds in memory
	// at once on the encode side. Scaled down from bzip2's ~900KiB
	// convention since the induced sorter here is a plain Go port with
	// no handwritten-assembly fast path to amortize a larger block over.
	defaultBlockSize = 1 << 18
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bbwtz: " + string(e) }

var (
	ErrCorrupt  error = Error("stream is corrupted")
	ErrClosed   error = Error("stream is closed")
	ErrTooLarge error = Error("block exceeds maximum size")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

var reverseLUT [256]byte

func init() {
	for i := range reverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseLUT[i] = b
	}
}

// reverseUint32 reverses all bits of v.
func reverseUint32(v uint32) (x uint32) {
	x |= uint32(reverseLUT[byte(v>>0)]) << 24
	x |= uint32(reverseLUT[byte(v>>8)]) << 16
	x |= uint32(reverseLUT[byte(v>>16)]) << 8
	x |= uint32(reverseLUT[byte(v>>24)]) << 0
	return x
}

// updateCRC folds buf into crc using bit-reversed CRC-32/IEEE, matching
// the convention bzip2-family formats use.
func updateCRC(crc uint32, buf []byte) uint32 {
	crc = reverseUint32(crc)
	var arr [4096]byte
	for len(buf) > 0 {
		cnt := copy(arr[:], buf)
		buf = buf[cnt:]
		for i, b := range arr[:cnt] {
			arr[i] = reverseLUT[b]
		}
		crc = crc32.Update(crc, crc32.IEEETable, arr[:cnt])
	}
	return reverseUint32(crc)
}

// combineCRC combines the CRC-32 of two adjacent blocks, the second of
// length len2, into the CRC-32 of their concatenation.
func combineCRC(crc1, crc2 uint32, len2 int64) uint32 {
	crc1 = reverseUint32(crc1)
	crc2 = reverseUint32(crc2)
	crc := hashmerge.CombineCRC32(crc32.IEEE, crc1, crc2, len2)
	return reverseUint32(crc)
}
