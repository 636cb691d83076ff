package transcode

import (
	"encoding/base64"
	"regexp"
)

// minEncodedLength is the shortest value treated as encoded. One base64
// quantum is four characters.
const minEncodedLength = 4

var (
	base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

	codec = base64.StdEncoding.Strict()
)

// IsProbablyEncoded reports whether value looks like standard base64.
//
// The check is heuristic: plaintext that happens to be valid base64, such as
// "abcd", is classified as encoded. That trade keeps Encode idempotent.
func IsProbablyEncoded(value string) bool {
	if len(value) < minEncodedLength {
		return false
	}
	if !base64Alphabet.MatchString(value) {
		return false
	}
	_, err := codec.DecodeString(value)
	return err == nil
}

// IsPrintable reports whether every byte is tab, line feed, carriage return
// or printable ASCII.
func IsPrintable(b []byte) bool {
	for _, c := range b {
		switch {
		case c == '\t', c == '\n', c == '\r':
		case c >= 0x20 && c <= 0x7e:
		default:
			return false
		}
	}
	return true
}
