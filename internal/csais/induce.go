package csais

const empty = int32(-1)

// induceL scans sa left to right and, for every already-placed inf-suffix
// at position j, derives the L-type factor-wrap predecessor of j (wrapping
// to the end of j's own factor when j is itself a factor start) and
// inserts it at the head of its bucket. Special factors have no suffix
// placed for them by the caller, so their sole pending entry (their own
// factor-wrap predecessor; for a singleton factor, the factor start
// itself) is inserted at the head of its bucket here, without a type
// check, as the scan reaches the bucket their start symbol belongs to.
func induceL(s []int32, sa []int32, factorStarts, suffType, special *BitSet, buckets []int32) {
	n := int32(len(sa))
	p := special.Prev(n)

	for i := int32(0); i < n; i++ {
		for p >= 0 && buckets[s[p]] == i {
			j := factorStarts.Next(p) - 1
			sa[buckets[s[j]]] = j
			buckets[s[j]]++
			p = special.Prev(p)
		}

		j := sa[i]
		if j < 0 {
			continue
		}

		if !factorStarts.Get(j) {
			j--
		} else {
			j = factorStarts.Next(j) - 1
		}

		if !suffType.Get(j) {
			sa[buckets[s[j]]] = j
			buckets[s[j]]++
		}
	}
}

// induceS scans sa right to left and, for every already-placed inf-suffix
// at position j, derives its predecessor j-1 and inserts it at the tail of
// its bucket if S-type. Factor starts are skipped: the last position of a
// factor longer than one symbol is always L-type (classify never marks it
// S), so such a factor start's factor-wrap predecessor is never S-type and
// induceL already handles it; a singleton factor's only position is marked
// S, but singletons are special and induceL places them.
func induceS(s []int32, sa []int32, factorStarts, suffType *BitSet, buckets []int32) {
	n := int32(len(sa))
	for i := n - 1; i >= 0; i-- {
		j := sa[i]
		if j < 0 {
			continue
		}
		if factorStarts.Get(j) {
			continue
		}
		j--
		if suffType.Get(j) {
			buckets[s[j]+1]--
			sa[buckets[s[j]+1]] = j
		}
	}
}
