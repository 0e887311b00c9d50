package chromaprint

import (
	"github.com/llehouerou/go-chromaprint/internal/bits"
)

// compressor accumulates the position-code sequence for a fingerprint
// being compressed. A fresh one is created per call.
//
// Ported from: FingerprintCompressor in
// chromaprint/src/fingerprint_compressor.cpp
type compressor struct {
	codes []uint8
}

// CompressFingerprint encodes a fingerprint into the compressed byte
// form decoded by DecompressFingerprint. Fingerprints too long for
// the 24-bit header length field fail with ErrTooLong.
//
// Ported from: FingerprintCompressor::Compress()
func CompressFingerprint(fp []uint32, algorithm Algorithm) ([]byte, error) {
	if len(fp) > maxFingerprintLength {
		return nil, ErrTooLong
	}

	c := &compressor{}
	if len(fp) > 0 {
		c.processCodeword(fp[0])
		for i := 1; i < len(fp); i++ {
			c.processCodeword(fp[i] ^ fp[i-1])
		}
	}

	w := bits.NewWriter()
	c.writeNormalCodes(w)
	w.Flush()
	c.writeExceptionCodes(w)
	w.Flush()

	length := len(fp)
	out := make([]byte, 0, 4+len(w.Bytes()))
	out = append(out, byte(algorithm), byte(length>>16), byte(length>>8), byte(length))
	return append(out, w.Bytes()...), nil
}

// processCodeword emits the position deltas of the set bits of x, low
// bit first, followed by the zero terminator. Positions are 1-based,
// so the deltas over a 32-bit word never exceed 32 and always fit the
// escape range.
//
// Ported from: FingerprintCompressor::ProcessSubfingerprint()
func (c *compressor) processCodeword(x uint32) {
	pos := 1
	lastPos := 0
	for x != 0 {
		if x&1 != 0 {
			c.codes = append(c.codes, uint8(pos-lastPos))
			lastPos = pos
		}
		x >>= 1
		pos++
	}
	c.codes = append(c.codes, 0)
}

// writeNormalCodes writes every code as a 3-bit group, clamping
// escaped values to the escape marker.
//
// Ported from: FingerprintCompressor::WriteNormalBits()
func (c *compressor) writeNormalCodes(w *bits.Writer) {
	for _, code := range c.codes {
		if code > maxNormalValue {
			code = maxNormalValue
		}
		w.Write(uint32(code), normalBits)
	}
}

// writeExceptionCodes writes the 5-bit extension for every code at or
// above the escape marker, in sequence order. A code of exactly
// maxNormalValue still gets an extension (of zero), since the decoder
// cannot tell it from a clamped larger value.
//
// Ported from: FingerprintCompressor::WriteExceptionBits()
func (c *compressor) writeExceptionCodes(w *bits.Writer) {
	for _, code := range c.codes {
		if code >= maxNormalValue {
			w.Write(uint32(code-maxNormalValue), exceptionBits)
		}
	}
}
