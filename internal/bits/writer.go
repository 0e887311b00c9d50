package bits

// Writer packs bit fields into a byte buffer, least significant bit
// first within each byte, matching the order Reader consumes.
//
// Ported from: BitStringWriter in chromaprint/src/bit_string_writer.h
type Writer struct {
	data    []byte
	buffer  uint32 // pending bits, low bits first
	bufSize uint   // number of valid bits in buffer (0-7 between calls)
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write appends the low n bits of value to the stream. n must be at
// most 24.
func (w *Writer) Write(value uint32, n uint) {
	w.buffer |= (value & (1<<n - 1)) << w.bufSize
	w.bufSize += n
	for w.bufSize >= 8 {
		w.data = append(w.data, byte(w.buffer))
		w.buffer >>= 8
		w.bufSize -= 8
	}
}

// Flush pads the current partial byte with zero bits, so the next
// Write starts on a byte boundary. A no-op when already aligned.
func (w *Writer) Flush() {
	if w.bufSize > 0 {
		w.data = append(w.data, byte(w.buffer))
		w.buffer = 0
		w.bufSize = 0
	}
}

// Bytes returns the accumulated stream. Pending unflushed bits are
// not included.
func (w *Writer) Bytes() []byte {
	return w.data
}
