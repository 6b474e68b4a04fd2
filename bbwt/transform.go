package bbwt

import "github.com/bwt-tools/bbwt/internal/csais"

// Transform holds reusable scratch buffers for repeated Forward/Inverse
// calls, so a caller driving many small blocks through the transform (the
// common case in a compression pipeline) pays for the symbol, CSA and
// permutation buffers once instead of on every call. The Lyndon factor
// marks, the bucket table and the induced sorter's working memory are
// still allocated on every call.
type Transform struct {
	symbols      []int32
	csa          []int32
	charsSeen    []int32
	stdPerm      []int32
	factorStarts *csais.BitSet
}

func (t *Transform) growSymbols(n int) {
	if cap(t.symbols) < n {
		t.symbols = make([]int32, n)
	} else {
		t.symbols = t.symbols[:n]
	}
}

func (t *Transform) loadSymbols(src []byte) {
	t.growSymbols(len(src))
	for i, b := range src {
		t.symbols[i] = int32(b)
	}
}

// Forward computes the bijective Burrows-Wheeler transform of src into
// dst. src and dst must have equal length and may safely alias each
// other, including being the same slice.
func (t *Transform) Forward(src, dst []byte) error {
	n := len(src)
	if len(dst) != n {
		return ErrLength
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		dst[0] = src[0]
		return nil
	}

	t.loadSymbols(src)

	if cap(t.csa) < n {
		t.csa = make([]int32, n)
	} else {
		t.csa = t.csa[:n]
	}

	t.factorStarts = csais.NewBitSet(int32(n) + 1)
	csais.LyndonFactors(t.symbols, t.factorStarts, nil)
	csais.ComputeCSA(t.symbols, t.csa, t.factorStarts, AlphabetSize)

	for outPos, inPos := range t.csa {
		var p int32
		if t.factorStarts.Get(inPos) {
			p = t.factorStarts.Next(inPos) - 1
		} else {
			p = inPos - 1
		}
		dst[outPos] = byte(t.symbols[p])
	}
	return nil
}

// Inverse computes the inverse bijective Burrows-Wheeler transform of src
// into dst. src and dst must have equal length and may safely alias each
// other. Unlike the classical transform, no primary index is required:
// every byte permutation of a given multiset is the transform of exactly
// one string, so Inverse never fails on malformed input — it always
// produces some string, though that string is meaningless if src was not
// actually produced by Forward.
func (t *Transform) Inverse(src, dst []byte) error {
	n := len(src)
	if len(dst) != n {
		return ErrLength
	}
	if n == 0 {
		return nil
	}
	if n == 1 {
		dst[0] = src[0]
		return nil
	}

	t.loadSymbols(src)

	buckets := csais.Buckets(t.symbols, AlphabetSize)

	if cap(t.charsSeen) < AlphabetSize {
		t.charsSeen = make([]int32, AlphabetSize)
	} else {
		t.charsSeen = t.charsSeen[:AlphabetSize]
		for i := range t.charsSeen {
			t.charsSeen[i] = 0
		}
	}

	if cap(t.stdPerm) < n {
		t.stdPerm = make([]int32, n)
	} else {
		t.stdPerm = t.stdPerm[:n]
	}

	for i, c := range t.symbols {
		t.stdPerm[i] = buckets[c] + t.charsSeen[c]
		t.charsSeen[c]++
	}

	outPos := int32(n - 1)
	for j := int32(0); j < int32(n); j++ {
		if t.stdPerm[j] < 0 {
			continue
		}
		inPos := j
		for t.stdPerm[inPos] >= 0 {
			dst[outPos] = byte(t.symbols[inPos])
			outPos--
			prev := inPos
			inPos = t.stdPerm[inPos]
			t.stdPerm[prev] = -1
		}
	}
	return nil
}

// Forward computes the bijective Burrows-Wheeler transform of src into
// dst using a fresh, unshared Transform. Prefer a reused *Transform for
// repeated calls.
func Forward(src, dst []byte) error {
	var t Transform
	return t.Forward(src, dst)
}

// Inverse computes the inverse bijective Burrows-Wheeler transform of src
// into dst using a fresh, unshared Transform. Prefer a reused *Transform
// for repeated calls.
func Inverse(src, dst []byte) error {
	var t Transform
	return t.Inverse(src, dst)
}
