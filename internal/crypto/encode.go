package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by BytesToText for byte sequences that are not UTF-8.
var ErrInvalidUTF8 = errors.New("crypto: bytes are not valid UTF-8")

// HexEncode returns lowercase hex, two digits per byte, no separators.
func HexEncode(b []byte) string { return hex.EncodeToString(b) }

// HexDecode is the inverse of HexEncode. Odd-length input or a non-hex digit
// is an error.
func HexDecode(s string) ([]byte, error) { return hex.DecodeString(s) }

// TextToBytes returns the UTF-8 encoding of s.
func TextToBytes(s string) []byte { return []byte(s) }

// BytesToText decodes b as UTF-8.
func BytesToText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Fingerprint names a public key in logs and on screen: the first 10 bytes
// of its SHA-256, in hex.
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return HexEncode(sum[:10])
}
