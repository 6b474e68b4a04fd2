package bbwtz

import "encoding/binary"

const (
	blockStart byte = 0x01
	blockEnd   byte = 0x00
)

// packBlock serializes the move-to-front/run-length coded form of one
// block, ready to hand to an entropy backend: the original block length,
// the index stream, and the run lengths (each packed through runCode so
// the same bijective base-2 numeration bzip2 uses for runs is exercised
// here too, even though the final entropy stage is a general-purpose
// coder rather than a purpose-built Huffman alphabet).
func packBlock(idxs []uint8, runs []uint32, origLen int) []byte {
	buf := make([]byte, 12, 12+len(idxs)+4*len(runs))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(origLen))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(idxs)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(runs)))
	buf = append(buf, idxs...)
	for _, r := range runs {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], runCode(r).encode())
		buf = append(buf, tmp[:]...)
	}
	return buf
}

// unpackBlock is the inverse of packBlock.
func unpackBlock(buf []byte) (idxs []uint8, runs []uint32, origLen uint32) {
	if len(buf) < 12 {
		panic(ErrCorrupt)
	}
	origLen = binary.LittleEndian.Uint32(buf[0:4])
	numIdxs := binary.LittleEndian.Uint32(buf[4:8])
	numRuns := binary.LittleEndian.Uint32(buf[8:12])
	buf = buf[12:]

	if uint64(numIdxs) > uint64(len(buf)) {
		panic(ErrCorrupt)
	}
	idxs = append(idxs, buf[:numIdxs]...)
	buf = buf[numIdxs:]

	if uint64(numRuns)*4 > uint64(len(buf)) {
		panic(ErrCorrupt)
	}
	runs = make([]uint32, numRuns)
	for i := range runs {
		runs[i] = runCode(binary.LittleEndian.Uint32(buf[4*i : 4*i+4])).decode()
	}
	return idxs, runs, origLen
}
