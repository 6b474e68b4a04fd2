package bbwt

import "github.com/bwt-tools/bbwt/internal/csais"

// CircularSuffixArray computes the circular suffix array of data: the
// permutation of [0, len(data)) that sorts the infinite circular
// extensions of every Lyndon factor of data into non-decreasing order.
// CircularSuffixArray(data)[i] is the starting offset of the rank-i
// inf-suffix.
func CircularSuffixArray(data []byte) []int32 {
	n := len(data)
	csa := make([]int32, n)
	if n == 0 {
		return csa
	}
	if n == 1 {
		csa[0] = 0
		return csa
	}

	symbols := make([]int32, n)
	for i, b := range data {
		symbols[i] = int32(b)
	}

	factorStarts := csais.NewBitSet(int32(n) + 1)
	csais.LyndonFactors(symbols, factorStarts, nil)
	csais.ComputeCSA(symbols, csa, factorStarts, AlphabetSize)
	return csa
}

// LyndonFactorStarts returns the starting offsets of every Lyndon factor
// of data, in increasing order (the Duval factorization).
func LyndonFactorStarts(data []byte) []int32 {
	n := int32(len(data))
	symbols := make([]int32, n)
	for i, b := range data {
		symbols[i] = int32(b)
	}

	factorStarts := csais.NewBitSet(n + 1)
	numFactors := csais.LyndonFactors(symbols, factorStarts, nil)

	starts := make([]int32, 0, numFactors)
	for i := int32(0); i < n; i = factorStarts.Next(i) {
		starts = append(starts, i)
	}
	return starts
}
