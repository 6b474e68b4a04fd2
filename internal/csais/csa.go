package csais

// ComputeCSA computes the circular suffix array of s into csa: csa[i] is
// the starting position of the inf-suffix ranked i among the infinite
// circular extensions of every Lyndon factor of s. factorStarts must be
// the Duval factorization of s (as produced by LyndonFactors), with its
// sentinel bit set at len(s). alphabetSize bounds the symbol values in s
// (every symbol must satisfy 0 <= s[i] < alphabetSize). csa must have the
// same length as s.
func ComputeCSA(s []int32, csa []int32, factorStarts *BitSet, alphabetSize int32) {
	n := int32(len(s))
	if n == 0 {
		return
	}

	suffType, special := classify(s, factorStarts)
	buckets := Buckets(s, alphabetSize)
	work := make([]int32, alphabetSize+1)

	for i := range csa {
		csa[i] = empty
	}

	// Seed every non-special LMS inf-suffix at the tail of its bucket.
	copy(work, buckets)
	for i := int32(0); i < n; i++ {
		if isLMS(i, factorStarts, suffType) && !special.Get(i) {
			work[s[i]+1]--
			csa[work[s[i]+1]] = i
		}
	}

	copy(work, buckets)
	induceL(s, csa, factorStarts, suffType, special, work)

	copy(work, buckets)
	induceS(s, csa, factorStarts, suffType, work)

	// Compact the (now correctly relative-ordered) non-special LMS
	// inf-suffixes to the front of csa.
	var numLMS int32
	for i := int32(0); i < n; i++ {
		if isLMS(csa[i], factorStarts, suffType) && !special.Get(csa[i]) {
			csa[numLMS] = csa[i]
			numLMS++
		}
	}
	for i := numLMS; i < n; i++ {
		csa[i] = 0
	}

	if numLMS > 0 {
		assignLMSLabels(s, csa, factorStarts, numLMS)
	}

	var numLabels int32
	if numLMS > 0 {
		numLabels = countAndRelabel(s, csa, numLMS)
	}

	if numLabels < numLMS {
		reduceAndRecurse(s, csa, factorStarts, suffType, special, numLMS, numLabels)
	}

	// Re-induce the final order from the correctly sorted LMS
	// inf-suffixes.
	copy(work, buckets)
	for i := numLMS; i < n; i++ {
		csa[i] = empty
	}
	for i := numLMS - 1; i >= 0; i-- {
		j := csa[i]
		csa[i] = empty
		work[s[j]+1]--
		csa[work[s[j]+1]] = j
	}

	copy(work, buckets)
	induceL(s, csa, factorStarts, suffType, special, work)

	copy(work, buckets)
	induceS(s, csa, factorStarts, suffType, work)
}

// assignLMSLabels records, in csa[numLMS + (pos>>1)] for every position
// pos that starts a non-special LMS inf-substring, the length of that
// inf-substring (the run up to, but not including, the next LMS boundary
// within the same factor). It walks each factor once, from its last
// position backward, using the same descent/ascent bookkeeping classify
// uses to find special factors, since an LMS boundary inside a factor is
// exactly a strict ascent following a strict descent.
func assignLMSLabels(s []int32, csa []int32, factorStarts *BitSet, numLMS int32) {
	n := int32(len(s))
	for fStart := int32(0); fStart < n; {
		fEnd := factorStarts.Next(fStart)

		j, c := fEnd, int32(0)
		c1 := s[fEnd-1]
		for i := fEnd - 2; i >= fStart; i-- {
			c0 := s[i]
			if c0 < c1+c {
				c = 1
			} else if c != 0 {
				csa[numLMS+((i+1)>>1)] = j - i - 1
				j = i + 1
				c = 0
			}
			c1 = c0
		}
		if j < fEnd || c != 0 {
			csa[numLMS+(fStart>>1)] = j - fStart
		}

		fStart = fEnd
	}
}

// countAndRelabel compares adjacent (in induced order) LMS inf-substrings
// by their recorded lengths and contents, replacing the length recorded
// at csa[numLMS+(pos>>1)] with a dense 1-based label shared by identical
// inf-substrings, and returns the number of distinct labels assigned.
func countAndRelabel(s []int32, csa []int32, numLMS int32) int32 {
	var numLabels, qLen int32
	q := int32(len(s))
	for i := int32(0); i < numLMS; i++ {
		pos := csa[i]
		subLen := csa[numLMS+(pos>>1)]
		distinct := true
		if subLen == qLen {
			var j int32
			for j < subLen && s[pos+j] == s[q+j] {
				j++
			}
			if j == subLen {
				distinct = false
			}
		}
		if distinct {
			numLabels++
			q = pos
			qLen = subLen
		}
		csa[numLMS+(pos>>1)] = numLabels
	}
	return numLabels
}

// reduceAndRecurse builds the reduced problem: a string of numLMS symbols
// over an alphabet of numLabels, one per non-special LMS position in
// order of occurrence, with its own Lyndon factorization inherited from
// which of those LMS positions were themselves factor starts of s. It
// recurses on that smaller instance and maps the result back onto the
// original LMS positions in csa[0:numLMS].
func reduceAndRecurse(s, csa []int32, factorStarts, suffType, special *BitSet, numLMS, numLabels int32) {
	n := int32(len(s))

	redFactors := NewBitSet(numLMS + 1)
	var outPos int32
	for inPos := int32(0); inPos < n; inPos++ {
		if isLMS(inPos, factorStarts, suffType) && !special.Get(inPos) {
			redFactors.Set(outPos, factorStarts.Get(inPos))
			outPos++
		}
	}
	redFactors.Set(numLMS, true)

	redStr := make([]int32, numLMS)
	inPos, outPos := n-1, numLMS-1
	for inPos >= numLMS {
		if csa[inPos] != 0 {
			redStr[outPos] = csa[inPos] - 1
			outPos--
		}
		inPos--
	}

	ComputeCSA(redStr, csa[:numLMS], redFactors, numLabels)

	outPos = 0
	for inPos := int32(0); inPos < n; inPos++ {
		if isLMS(inPos, factorStarts, suffType) && !special.Get(inPos) {
			redStr[outPos] = inPos
			outPos++
		}
	}
	for i := int32(0); i < numLMS; i++ {
		csa[i] = redStr[csa[i]]
	}
}
