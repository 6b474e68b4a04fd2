package csais

// isLMS reports whether pos begins an LMS inf-substring: either a Lyndon
// factor start, or an S-type position immediately preceded by an L-type
// position.
func isLMS(pos int32, factorStarts, suffType *BitSet) bool {
	if pos < 0 {
		return false
	}
	return factorStarts.Get(pos) || (suffType.Get(pos) && !suffType.Get(pos-1))
}

// classify types every position of s as L (false) or S (true), restricted
// to its own Lyndon factor (no comparison crosses a factor boundary), and
// marks every factor that has no internal LMS boundary as special. A
// factor is special when, scanned from its last position backward, the
// symbols never strictly ascend after having strictly descended at least
// once — this includes every singleton factor.
func classify(s []int32, factorStarts *BitSet) (suffType, special *BitSet) {
	n := int32(len(s))
	suffType = NewBitSet(n)
	special = NewBitSet(n + 1)

	for fStart := int32(0); fStart < n; {
		fEnd := factorStarts.Next(fStart)
		suffType.Set(fStart, true)

		for j := fEnd - 2; j >= fStart; j-- {
			if s[j] < s[j+1] || (s[j] == s[j+1] && suffType.Get(j+1)) {
				suffType.Set(j, true)
			}
		}

		var m, c int32
		c1 := s[fEnd-1]
		for i := fEnd - 2; i >= fStart; i-- {
			c0 := s[i]
			if c0 < c1+c {
				c = 1
			} else if c != 0 {
				m++
				c = 0
			}
			c1 = c0
		}
		if m == 0 && c == 0 {
			special.Set(fStart, true)
		}

		fStart = fEnd
	}
	special.Set(n, true)
	return suffType, special
}
