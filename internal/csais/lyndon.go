package csais

// LyndonFactors computes the Duval factorization of s: the unique way of
// writing s as a non-increasing concatenation of Lyndon words. It sets a
// bit in factorStarts for the first position of every factor (plus a
// sentinel bit at len(s)), and, if firstOccurrence is non-nil, a bit for
// the first position of every run of repeated identical factors. It
// returns the number of factors.
func LyndonFactors(s []int32, factorStarts, firstOccurrence *BitSet) int32 {
	n := int32(len(s))
	var numFactors int32
	var i int32
	for i < n {
		j, k := i+1, i
		for j < n && s[k] <= s[j] {
			if s[k] < s[j] {
				k = i
			} else {
				k++
			}
			j++
		}
		if firstOccurrence != nil {
			firstOccurrence.Set(i, true)
		}
		for i <= k {
			if factorStarts != nil {
				factorStarts.Set(i, true)
			}
			numFactors++
			i += j - k
		}
	}
	if factorStarts != nil {
		factorStarts.Set(n, true)
	}
	return numFactors
}
