package textio

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeText converts raw bytes to a string using a fallback chain:
// valid UTF-8 passes through, a UTF-16 byte order mark selects a UTF-16
// decode, any remaining bytes are read as Latin-1, and as a last resort
// invalid sequences are replaced with U+FFFD. DecodeText never fails.
func DecodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	if s, ok := decodeUTF16(b); ok {
		return s
	}
	if s, ok := decodeLatin1(b); ok {
		return s
	}
	return strings.ToValidUTF8(string(b), "�")
}

// decodeUTF16 decodes b as UTF-16 when it starts with a byte order
// mark. The BOM itself is consumed by the decoder.
func decodeUTF16(b []byte) (string, bool) {
	if len(b) < 2 || len(b)%2 != 0 {
		return "", false
	}
	var enc encoding.Encoding
	switch {
	case b[0] == 0xFF && b[1] == 0xFE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case b[0] == 0xFE && b[1] == 0xFF:
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeLatin1(b []byte) (string, bool) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}
