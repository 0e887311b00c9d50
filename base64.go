package chromaprint

import "encoding/base64"

// Compressed fingerprints travel as URL-safe base64 without padding.
// RawURLEncoding matches the alphabet used by Chromaprint's own
// base64 ("-" and "_", no "=").
var fingerprintEncoding = base64.RawURLEncoding

// EncodeFingerprint compresses a fingerprint and returns its base64
// transport form, as produced by chromaprint_get_fingerprint().
func EncodeFingerprint(fp []uint32, algorithm Algorithm) (string, error) {
	data, err := CompressFingerprint(fp, algorithm)
	if err != nil {
		return "", err
	}
	return fingerprintEncoding.EncodeToString(data), nil
}

// DecodeFingerprint decodes the base64 transport form of a
// fingerprint and decompresses it.
func DecodeFingerprint(s string) ([]uint32, Algorithm, error) {
	data, err := fingerprintEncoding.DecodeString(s)
	if err != nil {
		return nil, 0, ErrInvalidBase64
	}
	return DecompressFingerprint(data)
}
