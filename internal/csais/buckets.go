package csais

// Buckets returns the cumulative symbol-count table for s over an alphabet
// of the given size: buckets[c] is the number of symbols in s strictly
// less than c, for c in [0, alphabetSize], so buckets[0] == 0 and
// buckets[alphabetSize] == len(s). The start of bucket c is buckets[c];
// its end (exclusive) is buckets[c+1].
func Buckets(s []int32, alphabetSize int32) []int32 {
	counts := make([]int32, alphabetSize)
	for _, c := range s {
		counts[c]++
	}
	buckets := make([]int32, alphabetSize+1)
	var total int32
	for c := int32(0); c < alphabetSize; c++ {
		buckets[c] = total
		total += counts[c]
	}
	buckets[alphabetSize] = total
	return buckets
}
