package chromaprint

// Algorithm identifies the fingerprint algorithm that produced a
// fingerprint. The value travels in the first byte of the compressed
// form and is opaque to the codec itself.
//
// Source: CHROMAPRINT_ALGORITHM_* in chromaprint/src/chromaprint.h
type Algorithm int

// Fingerprint algorithms.
const (
	AlgorithmTest1 Algorithm = 0
	AlgorithmTest2 Algorithm = 1 // Default
	AlgorithmTest3 Algorithm = 2
	AlgorithmTest4 Algorithm = 3
	AlgorithmTest5 Algorithm = 4
)

// DefaultAlgorithm is the algorithm used by current Chromaprint
// releases.
const DefaultAlgorithm = AlgorithmTest2

// Bit widths of the position-delta codes. A normal code of
// maxNormalValue is an escape: the true delta is maxNormalValue plus
// a following exception code.
//
// Source: kNormalBits, kExceptionBits, kMaxNormalValue in
// chromaprint/src/fingerprint_compressor.cpp
const (
	normalBits     = 3
	exceptionBits  = 5
	maxNormalValue = 7
)

// maxFingerprintLength is the largest codeword count representable in
// the 24-bit header length field.
const maxFingerprintLength = 1<<24 - 1
