package chromaprint

// Error represents a fingerprint codec error code.
type Error int

// Error codes. The messages mirror the diagnostics of the Chromaprint
// implementation where one exists.
const (
	ErrNone               Error = 0
	ErrTooShort           Error = 1 // compressed data shorter than the 4-byte header
	ErrTruncated          Error = 2 // payload ends before the declared codeword count is covered
	ErrInvalidBitPosition Error = 3 // decoded bit position beyond the 32-bit codeword
	ErrInvalidBase64      Error = 4 // transport string is not valid URL-safe base64
	ErrTooLong            Error = 5 // fingerprint exceeds the 24-bit header length field
)

var errMessages = [6]string{
	"no error",
	"invalid fingerprint (shorter than 4 bytes)",
	"invalid fingerprint (too short)",
	"invalid fingerprint (bit position out of range)",
	"invalid fingerprint (base64 decoding failed)",
	"fingerprint too long to compress",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// GetErrorMessage returns the message for an error code.
func GetErrorMessage(e Error) string {
	return e.Error()
}
