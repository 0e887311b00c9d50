package chromaprint

import (
	"github.com/llehouerou/go-chromaprint/internal/bits"
)

// decompressor holds the transient state of a single decompression:
// the position-code sequence collected by the two read passes and the
// codewords being reconstructed. A fresh one is created per call.
//
// Ported from: FingerprintDecompressor in
// chromaprint/src/fingerprint_decompressor.cpp
type decompressor struct {
	codes  []uint8
	result []uint32
}

// DecompressFingerprint decodes a compressed fingerprint and returns
// the codeword sequence together with the algorithm identifier from
// the header.
//
// The compressed layout is:
//
//	byte 0     algorithm identifier
//	bytes 1-3  codeword count, big-endian
//	bytes 4..  3-bit position-delta codes, byte-aligned,
//	           then the 5-bit exception codes, byte-aligned
//
// On any validation failure the returned slice is nil and the
// algorithm is not reported; a partial fingerprint is never returned.
//
// Ported from: FingerprintDecompressor::Decompress() in
// chromaprint/src/fingerprint_decompressor.cpp
func DecompressFingerprint(data []byte) ([]uint32, Algorithm, error) {
	if len(data) < 4 {
		return nil, 0, ErrTooShort
	}

	algorithm := Algorithm(data[0])
	length := int(data[1])<<16 | int(data[2])<<8 | int(data[3])

	r := bits.NewReader(data)
	for i := 0; i < 4; i++ {
		r.Read(8) // header
	}

	// Every codeword needs at least its 3-bit terminator, so this is
	// a lower bound on the payload size. Checked before any payload
	// read.
	if r.AvailableBits() < length*normalBits {
		return nil, 0, ErrTruncated
	}

	d := &decompressor{result: make([]uint32, length)}
	for i := range d.result {
		d.result[i] = ^uint32(0) // sentinel, every slot is overwritten below
	}

	r.Reset()
	if err := d.readNormalCodes(r, length); err != nil {
		return nil, 0, err
	}

	r.Reset()
	if err := d.readExceptionCodes(r); err != nil {
		return nil, 0, err
	}

	if err := d.unpackCodes(); err != nil {
		return nil, 0, err
	}
	return d.result, algorithm, nil
}

// readNormalCodes collects 3-bit codes until one zero terminator has
// been seen per codeword. A stream that runs out of bits before then
// never had enough terminators.
//
// Ported from: FingerprintDecompressor::ReadNormalBits()
func (d *decompressor) readNormalCodes(r *bits.Reader, length int) error {
	terminators := 0
	for terminators < length {
		if r.AvailableBits() < normalBits {
			return ErrTruncated
		}
		code := uint8(r.Read(normalBits))
		if code == 0 {
			terminators++
		}
		d.codes = append(d.codes, code)
	}
	return nil
}

// readExceptionCodes widens every escaped code in place. The reader
// has been byte-aligned past the normal section, so the 5-bit groups
// are consumed in the order the escapes appear.
//
// Ported from: FingerprintDecompressor::ReadExceptionBits()
func (d *decompressor) readExceptionCodes(r *bits.Reader) error {
	for i, code := range d.codes {
		if code == maxNormalValue {
			if r.AvailableBits() < exceptionBits {
				return ErrTruncated
			}
			d.codes[i] = code + uint8(r.Read(exceptionBits))
		}
	}
	return nil
}

// unpackCodes rebuilds the codewords from the resolved position-code
// sequence. Each nonzero code advances the bit position within the
// current XOR delta; a zero code closes the delta and undoes the XOR
// chain against the previous codeword.
//
// Ported from: FingerprintDecompressor::UnpackBits()
func (d *decompressor) unpackCodes() error {
	i := 0
	lastPos := 0
	var value uint32
	for _, code := range d.codes {
		if code == 0 {
			if i > 0 {
				value ^= d.result[i-1]
			}
			d.result[i] = value
			value = 0
			lastPos = 0
			i++
			continue
		}
		pos := lastPos + int(code)
		if pos > 32 {
			// No conformant encoder produces a position past the
			// codeword width; only corrupt input reaches here.
			return ErrInvalidBitPosition
		}
		value |= 1 << uint(pos-1)
		lastPos = pos
	}
	return nil
}
