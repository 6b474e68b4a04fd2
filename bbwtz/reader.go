package bbwtz

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/bwt-tools/bbwt/bbwt"
)

// Reader implements io.Reader, decoding a bbwtz stream produced by Writer.
type Reader struct {
	r           io.Reader
	backend     Backend
	headerRead  bool
	combinedCRC uint32
	pending     []byte
	pendOff     int
	err         error

	t   bbwt.Transform
	mtf moveToFront
}

// NewReader returns a Reader that decodes a bbwtz stream read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (z *Reader) Read(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	defer errRecover(&err)

	for z.pendOff >= len(z.pending) {
		if !z.readBlock() {
			z.err = io.EOF
			return 0, z.err
		}
	}
	n = copy(p, z.pending[z.pendOff:])
	z.pendOff += n
	return n, nil
}

func (z *Reader) readHeader() {
	hdr := make([]byte, len(hdrMagic)+1)
	if _, err := io.ReadFull(z.r, hdr); err != nil {
		panic(err)
	}
	if string(hdr[:len(hdrMagic)]) != hdrMagic {
		panic(ErrCorrupt)
	}
	z.backend = Backend(hdr[len(hdrMagic)])
	z.headerRead = true
}

// readBlock decodes the next block into z.pending and reports whether one
// was available; it returns false once the stream trailer has been read
// and verified.
func (z *Reader) readBlock() bool {
	if !z.headerRead {
		z.readHeader()
	}

	var marker [1]byte
	if _, err := io.ReadFull(z.r, marker[:]); err != nil {
		panic(err)
	}

	if marker[0] == blockEnd {
		var trailer [4]byte
		if _, err := io.ReadFull(z.r, trailer[:]); err != nil {
			panic(err)
		}
		if binary.LittleEndian.Uint32(trailer[:]) != z.combinedCRC {
			panic(ErrCorrupt)
		}
		return false
	}
	if marker[0] != blockStart {
		panic(ErrCorrupt)
	}

	var hdr [12]byte
	if _, err := io.ReadFull(z.r, hdr[:]); err != nil {
		panic(err)
	}
	origLen := binary.LittleEndian.Uint32(hdr[0:4])
	compLen := binary.LittleEndian.Uint32(hdr[4:8])
	wantCRC := binary.LittleEndian.Uint32(hdr[8:12])

	compressed := make([]byte, compLen)
	if _, err := io.ReadFull(z.r, compressed); err != nil {
		panic(err)
	}

	payload := z.decompress(compressed)
	idxs, runs, gotOrigLen := unpackBlock(payload)
	if gotOrigLen != origLen {
		panic(ErrCorrupt)
	}

	z.mtf.init(fullAlphabet)
	transformed := z.mtf.decode(idxs, runs)
	if uint32(len(transformed)) != origLen {
		panic(ErrCorrupt)
	}

	block := make([]byte, origLen)
	if err := z.t.Inverse(transformed, block); err != nil {
		panic(err)
	}

	gotCRC := updateCRC(0, block)
	if gotCRC != wantCRC {
		panic(ErrCorrupt)
	}
	z.combinedCRC = combineCRC(z.combinedCRC, gotCRC, int64(origLen))

	z.pending = block
	z.pendOff = 0
	return true
}

func (z *Reader) decompress(compressed []byte) []byte {
	switch z.backend {
	case BackendXZ:
		xr, err := xz.NewReader(bytes.NewReader(compressed))
		if err != nil {
			panic(err)
		}
		payload, err := ioutil.ReadAll(xr)
		if err != nil {
			panic(err)
		}
		return payload
	default:
		fr := flate.NewReader(bytes.NewReader(compressed))
		defer fr.Close()
		payload, err := ioutil.ReadAll(fr)
		if err != nil {
			panic(err)
		}
		return payload
	}
}
