package chromaprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFingerprint_KnownString(t *testing.T) {
	encoded, err := EncodeFingerprint([]uint32{1}, AlgorithmTest1)
	require.NoError(t, err)
	// base64 of 00 00 00 01 01, URL-safe, unpadded
	assert.Equal(t, "AAAAAQE", encoded)
}

func TestEncodeDecodeFingerprint_RoundTrip(t *testing.T) {
	fp := []uint32{0x12345678, 0x12345679, 0x1234767B}

	encoded, err := EncodeFingerprint(fp, DefaultAlgorithm)
	require.NoError(t, err)

	got, algorithm, err := DecodeFingerprint(encoded)
	require.NoError(t, err)
	assert.Equal(t, fp, got)
	assert.Equal(t, DefaultAlgorithm, algorithm)
}

func TestDecodeFingerprint_InvalidBase64(t *testing.T) {
	fp, _, err := DecodeFingerprint("not!valid!base64!")
	require.ErrorIs(t, err, ErrInvalidBase64)
	assert.Nil(t, fp)
}

func TestDecodeFingerprint_StandardAlphabetRejected(t *testing.T) {
	// "+" and "/" belong to the standard alphabet, not the URL-safe
	// one fingerprints use
	fp, _, err := DecodeFingerprint("AAAA+/AB")
	require.ErrorIs(t, err, ErrInvalidBase64)
	assert.Nil(t, fp)
}

func TestDecodeFingerprint_TruncatedPayload(t *testing.T) {
	// Valid base64 carrying an invalid compressed payload
	encoded := fingerprintEncoding.EncodeToString([]byte{0x00, 0x00, 0x00, 0x03, 0xFF})
	fp, _, err := DecodeFingerprint(encoded)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Nil(t, fp)
}
