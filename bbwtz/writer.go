package bbwtz

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/bwt-tools/bbwt/bbwt"
)

// Backend selects the entropy coder used for a block's final stage.
type Backend byte

const (
	BackendFlate Backend = iota
	BackendXZ
)

var fullAlphabet = func() []uint8 {
	a := make([]uint8, bbwt.AlphabetSize)
	for i := range a {
		a[i] = uint8(i)
	}
	return a
}()

// Writer implements io.WriteCloser, producing a bbwtz stream: a header,
// then one bijectively-transformed, move-to-front/run-length coded,
// entropy-compressed block per defaultBlockSize bytes of input, each
// guarded by its own CRC-32, combined into a running stream CRC written
// in the trailer.
type Writer struct {
	w           io.Writer
	backend     Backend
	buf         []byte
	combinedCRC uint32
	headerDone  bool
	closed      bool

	t   bbwt.Transform
	mtf moveToFront
}

// NewWriter returns a Writer that writes a bbwtz stream to w using the
// flate entropy backend. Call SetBackend before the first Write to use a
// different backend.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, buf: make([]byte, 0, defaultBlockSize)}
}

// SetBackend selects the entropy coder. It must be called before the
// first Write.
func (z *Writer) SetBackend(b Backend) { z.backend = b }

func (z *Writer) Write(p []byte) (n int, err error) {
	defer errRecover(&err)
	if z.closed {
		panic(ErrClosed)
	}
	if !z.headerDone {
		z.writeHeader()
	}

	n = len(p)
	for len(p) > 0 {
		room := defaultBlockSize - len(z.buf)
		if room > len(p) {
			room = len(p)
		}
		z.buf = append(z.buf, p[:room]...)
		p = p[room:]
		if len(z.buf) == defaultBlockSize {
			z.flushBlock()
		}
	}
	return n, nil
}

// Close flushes any buffered data and writes the stream trailer.
func (z *Writer) Close() (err error) {
	defer errRecover(&err)
	if z.closed {
		return nil
	}
	if !z.headerDone {
		z.writeHeader()
	}
	z.flushBlock()

	var trailer [5]byte
	trailer[0] = blockEnd
	binary.LittleEndian.PutUint32(trailer[1:], z.combinedCRC)
	if _, err := z.w.Write(trailer[:]); err != nil {
		panic(err)
	}
	z.closed = true
	return nil
}

func (z *Writer) writeHeader() {
	hdr := append([]byte(hdrMagic), byte(z.backend))
	if _, err := z.w.Write(hdr); err != nil {
		panic(err)
	}
	z.headerDone = true
}

func (z *Writer) flushBlock() {
	if len(z.buf) == 0 {
		return
	}

	transformed := make([]byte, len(z.buf))
	if err := z.t.Forward(z.buf, transformed); err != nil {
		panic(err)
	}

	z.mtf.init(fullAlphabet)
	idxs, runs := z.mtf.encode(transformed)

	payload := packBlock(idxs, runs, len(z.buf))
	compressed := z.compress(payload)

	crc := updateCRC(0, z.buf)
	z.combinedCRC = combineCRC(z.combinedCRC, crc, int64(len(z.buf)))

	hdr := make([]byte, 13)
	hdr[0] = blockStart
	binary.LittleEndian.PutUint32(hdr[1:5], uint32(len(z.buf)))
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(len(compressed)))
	binary.LittleEndian.PutUint32(hdr[9:13], crc)
	if _, err := z.w.Write(hdr); err != nil {
		panic(err)
	}
	if _, err := z.w.Write(compressed); err != nil {
		panic(err)
	}

	z.buf = z.buf[:0]
}

func (z *Writer) compress(payload []byte) []byte {
	var buf bytes.Buffer
	switch z.backend {
	case BackendXZ:
		xw, err := xz.NewWriter(&buf)
		if err != nil {
			panic(err)
		}
		if _, err := xw.Write(payload); err != nil {
			panic(err)
		}
		if err := xw.Close(); err != nil {
			panic(err)
		}
	default:
		fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			panic(err)
		}
		if _, err := fw.Write(payload); err != nil {
			panic(err)
		}
		if err := fw.Close(); err != nil {
			panic(err)
		}
	}
	return buf.Bytes()
}
