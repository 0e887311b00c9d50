// Package chromaprint implements the compressed fingerprint format
// used by Chromaprint/AcoustID audio fingerprints.
//
// A fingerprint is an ordered sequence of 32-bit codewords in which
// consecutive values usually differ in only a few bits. The format
// stores each codeword as an XOR delta against its predecessor and
// encodes the positions of the set bits in that delta as small
// position deltas: 3-bit codes with a 5-bit escape extension for
// gaps larger than six bits.
//
// # Basic Usage
//
// To decode a compressed fingerprint:
//
//	fp, algorithm, err := chromaprint.DecompressFingerprint(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Fingerprints are usually exchanged as URL-safe base64 strings:
//
//	fp, algorithm, err := chromaprint.DecodeFingerprint("AQAAC...")
//
// The inverse transforms are CompressFingerprint and
// EncodeFingerprint.
//
// # Thread Safety
//
// All functions are stateless one-shot transforms; concurrent calls
// over distinct inputs need no coordination.
//
// # Reference
//
// Ported from Chromaprint: https://github.com/acoustid/chromaprint
package chromaprint
