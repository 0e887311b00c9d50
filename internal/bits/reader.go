// Package bits implements the LSB-first bitstream used by the
// compressed fingerprint format.
package bits

// Reader reads bit fields from a byte buffer.
//
// Bits fill each byte from the least significant bit upward, and a
// multi-bit field is read low stream bits into low result bits, so a
// group that fits in one byte has the value (byte >> offset) & mask.
// This is the packing order produced by Writer.
//
// Ported from: BitStringReader in chromaprint/src/bit_string_reader.h
type Reader struct {
	data    []byte
	pos     int    // next byte to load from data
	buffer  uint32 // loaded but unconsumed bits, low bits first
	bufSize uint   // number of valid bits in buffer
	eof     bool   // sticky, set by the first starved Read
}

// NewReader creates a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Read consumes the next n bits and returns them as an unsigned
// integer, low stream bits in the low result bits. n must be at most
// 24.
//
// Reading past the end of the buffer sets the sticky EOF flag and
// returns whatever bits remained, zero-padded to n bits.
func (r *Reader) Read(n uint) uint32 {
	for r.bufSize < n && r.pos < len(r.data) {
		r.buffer |= uint32(r.data[r.pos]) << r.bufSize
		r.pos++
		r.bufSize += 8
	}
	if r.bufSize < n {
		r.eof = true
	}

	result := r.buffer & (1<<n - 1)
	r.buffer >>= n
	if r.bufSize > n {
		r.bufSize -= n
	} else {
		r.bufSize = 0
	}
	return result
}

// AvailableBits returns the number of bits left between the cursor
// and the end of the buffer. It reports 0 once EOF has been hit.
func (r *Reader) AvailableBits() int {
	if r.eof {
		return 0
	}
	return int(r.bufSize) + 8*(len(r.data)-r.pos)
}

// EOF reports whether a Read has run past the end of the buffer.
func (r *Reader) EOF() bool {
	return r.eof
}

// Reset discards the unconsumed bits of the current byte so that the
// next Read starts at the following byte boundary. The encoder pads
// each section of the stream to a whole byte, so Reset is how a
// second pass lands on the first bit of the next section. It does not
// clear the EOF flag.
func (r *Reader) Reset() {
	r.buffer = 0
	r.bufSize = 0
}
