package bbwtz

import (
	"bytes"
	"io/ioutil"
	"testing"
)

func roundTripStream(t *testing.T, backend Backend, data []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetBackend(backend)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	r := NewReader(&buf)
	got, err := ioutil.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}
}

func TestRoundTripFlate(t *testing.T) {
	for _, s := range []string{"", "a", "banana", "the quick brown fox jumps over the lazy dog"} {
		roundTripStream(t, BackendFlate, []byte(s))
	}
}

func TestRoundTripXZ(t *testing.T) {
	roundTripStream(t, BackendXZ, []byte("mississippi river mississippi river"))
}

func TestRoundTripMultiBlock(t *testing.T) {
	data := bytes.Repeat([]byte("abcabacabadabacaba "), defaultBlockSize/8)
	roundTripStream(t, BackendFlate, data)
}

func TestCorruptionDetected(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write([]byte("corruption should be detected")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	raw := buf.Bytes()
	raw[len(raw)-1] ^= 0xff // corrupt the trailer CRC

	r := NewReader(bytes.NewReader(raw))
	if _, err := ioutil.ReadAll(r); err != ErrCorrupt {
		t.Errorf("ReadAll on corrupted stream: got %v, want %v", err, ErrCorrupt)
	}
}
