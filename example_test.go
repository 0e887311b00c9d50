package chromaprint_test

import (
	"fmt"

	"github.com/llehouerou/go-chromaprint"
)

func Example() {
	fp := []uint32{1, 5}

	encoded, err := chromaprint.EncodeFingerprint(fp, chromaprint.DefaultAlgorithm)
	if err != nil {
		fmt.Println("encode error:", err)
		return
	}

	decoded, algorithm, err := chromaprint.DecodeFingerprint(encoded)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Println("algorithm:", algorithm)
	fmt.Println("fingerprint:", decoded)

	// Output:
	// algorithm: 1
	// fingerprint: [1 5]
}

func ExampleDecompressFingerprint() {
	// 4-byte header (algorithm 0, one codeword) followed by the
	// payload: delta 1, terminator
	data := []byte{0x00, 0x00, 0x00, 0x01, 0x01}

	fp, algorithm, err := chromaprint.DecompressFingerprint(data)
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Println(fp, algorithm)

	// Output:
	// [1] 0
}
