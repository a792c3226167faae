package clip

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// CF_UNICODETEXT payloads are little-endian UTF-16 with no BOM.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16 returns text as UTF-16LE followed by a null code unit.
func encodeUTF16(text string) ([]byte, error) {
	b, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return append(b, 0, 0), nil
}

// decodeUTF16 decodes a UTF-16LE block and drops the null terminator plus
// any zero padding the allocator left after it.
func decodeUTF16(b []byte) (string, error) {
	b = b[:len(b)&^1]
	s, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(s), "\x00"), nil
}
