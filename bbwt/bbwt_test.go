package bbwt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bwt-tools/bbwt/internal/testutil"
)

func roundTrip(t *testing.T, data []byte) {
	t.Helper()

	fwd := make([]byte, len(data))
	if err := Forward(data, fwd); err != nil {
		t.Fatalf("Forward(%q) error: %v", data, err)
	}

	rev := make([]byte, len(data))
	if err := Inverse(fwd, rev); err != nil {
		t.Fatalf("Inverse error: %v", err)
	}

	if !cmp.Equal(rev, data) {
		t.Errorf("round-trip mismatch: Forward(%q) = %q, Inverse of that = %q", data, fwd, rev)
	}
}

func TestRoundTripVectors(t *testing.T) {
	vectors := []string{
		"",
		"a",
		"aa",
		"aaaa",
		"banana",
		"mississippi",
		"abcabcabc",
		"zyxwvu",
		"the quick brown fox jumps over the lazy dog",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}
	for _, v := range vectors {
		roundTrip(t, []byte(v))
	}
}

func TestForwardIsPermutation(t *testing.T) {
	data := []byte("mississippi river")
	fwd := make([]byte, len(data))
	if err := Forward(data, fwd); err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	var want, got [256]int
	for _, b := range data {
		want[b]++
	}
	for _, b := range fwd {
		got[b]++
	}
	if !cmp.Equal(got, want) {
		t.Errorf("Forward output is not a permutation of the input: got histogram %v, want %v", got, want)
	}
}

func TestForwardInPlace(t *testing.T) {
	data := []byte("circular suffix arrays are fun")
	buf := append([]byte(nil), data...)

	if err := Forward(buf, buf); err != nil {
		t.Fatalf("in-place Forward error: %v", err)
	}

	fwd := make([]byte, len(data))
	if err := Forward(data, fwd); err != nil {
		t.Fatalf("Forward error: %v", err)
	}

	if !cmp.Equal(buf, fwd) {
		t.Errorf("in-place Forward = %q, want %q", buf, fwd)
	}
}

func TestForwardLengthMismatch(t *testing.T) {
	if err := Forward([]byte("abc"), make([]byte, 2)); err != ErrLength {
		t.Errorf("Forward with mismatched lengths: got %v, want %v", err, ErrLength)
	}
	if err := Inverse([]byte("abc"), make([]byte, 2)); err != ErrLength {
		t.Errorf("Inverse with mismatched lengths: got %v, want %v", err, ErrLength)
	}
}

func TestRoundTripRandom(t *testing.T) {
	alphabets := []int{2, 4, 256}
	sizes := []int{0, 1, 2, 3, 7, 100, 1000, 100000}

	for _, alphaSize := range alphabets {
		rnd := testutil.NewRand(alphaSize)
		for _, n := range sizes {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(rnd.Intn(alphaSize))
			}
			roundTrip(t, data)
		}
	}
}

func TestCircularSuffixArrayIsPermutation(t *testing.T) {
	data := []byte("abaaba")
	csa := CircularSuffixArray(data)
	if len(csa) != len(data) {
		t.Fatalf("CircularSuffixArray length = %d, want %d", len(csa), len(data))
	}

	seen := make([]bool, len(data))
	for _, pos := range csa {
		if pos < 0 || int(pos) >= len(data) || seen[pos] {
			t.Fatalf("CircularSuffixArray(%q) = %v is not a permutation of [0,%d)", data, csa, len(data))
		}
		seen[pos] = true
	}
}

func TestLyndonFactorStarts(t *testing.T) {
	tests := []struct {
		data string
		want []int32
	}{
		{"", nil},
		{"a", []int32{0}},
		{"aa", []int32{0, 1}},
		{"zyx", []int32{0, 1, 2}},
		{"banana", []int32{0, 1, 3, 5}},
	}
	for _, tc := range tests {
		got := LyndonFactorStarts([]byte(tc.data))
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !cmp.Equal(got, tc.want) {
			t.Errorf("LyndonFactorStarts(%q) = %v, want %v", tc.data, got, tc.want)
		}
	}
}
