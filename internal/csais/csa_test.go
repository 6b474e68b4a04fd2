package csais

import "testing"

func computeCSA(t *testing.T, s []int32, alphabetSize int32) ([]int32, *BitSet) {
	t.Helper()
	n := int32(len(s))
	fs := NewBitSet(n + 1)
	LyndonFactors(s, fs, nil)
	csa := make([]int32, n)
	ComputeCSA(s, csa, fs, alphabetSize)
	return csa, fs
}

func TestComputeCSAIsPermutation(t *testing.T) {
	cases := []string{
		"banana", "mississippi", "aaaa", "zyxwvu", "a", "aa",
		"abcabcabc", "abacabadabacaba", "cacao", "xxxxxxxxxx",
	}
	for _, c := range cases {
		s := symbols(c)
		csa, _ := computeCSA(t, s, 256)
		seen := make([]bool, len(s))
		for _, pos := range csa {
			if pos < 0 || int(pos) >= len(s) || seen[pos] {
				t.Fatalf("ComputeCSA(%q) = %v is not a permutation of [0,%d)", c, csa, len(s))
			}
			seen[pos] = true
		}
	}
}

// factorBounds finds the Lyndon factor [start, end) containing pos.
func factorBounds(fs *BitSet, pos int32) (start, end int32) {
	start = pos
	for !fs.Get(start) {
		start--
	}
	end = fs.Next(start)
	return start, end
}

// infSuffixLess reports whether the infinite circular extension of the
// factor containing p, read starting at p, is lexicographically less than
// that of the factor containing q, read starting at q.
func infSuffixLess(s []int32, fs *BitSet, p, q int32) bool {
	ps, pe := factorBounds(fs, p)
	qs, qe := factorBounds(fs, q)
	pLen, qLen := pe-ps, qe-qs

	const bound = 64
	for k := int32(0); k < bound; k++ {
		cp := s[ps+(p-ps+k)%pLen]
		cq := s[qs+(q-qs+k)%qLen]
		if cp != cq {
			return cp < cq
		}
	}
	return false
}

func TestComputeCSAIsSorted(t *testing.T) {
	cases := []string{
		"banana", "mississippi", "aaaa", "zyxwvu",
		"abcabcabc", "abacabadabacaba", "cacao",
	}
	for _, c := range cases {
		s := symbols(c)
		csa, fs := computeCSA(t, s, 256)
		for i := 1; i < len(csa); i++ {
			if infSuffixLess(s, fs, csa[i], csa[i-1]) {
				t.Errorf("ComputeCSA(%q) = %v not sorted: rank %d (%d) precedes rank %d (%d) out of order",
					c, csa, i-1, csa[i-1], i, csa[i])
			}
		}
	}
}

func TestComputeCSATrivial(t *testing.T) {
	csa, _ := computeCSA(t, symbols("a"), 256)
	if len(csa) != 1 || csa[0] != 0 {
		t.Errorf("ComputeCSA(%q) = %v, want [0]", "a", csa)
	}

	csa0, _ := computeCSA(t, symbols(""), 256)
	if len(csa0) != 0 {
		t.Errorf("ComputeCSA(\"\") = %v, want empty", csa0)
	}
}
