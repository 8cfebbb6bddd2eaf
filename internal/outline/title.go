package outline

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeTitle turns raw PDF string bytes into normalized title text. PDF text
// strings are either UTF-16BE (usually BOM-prefixed) or a single-byte
// encoding; some producers mis-tag UTF-16BE data as plain bytes, so an
// embedded NUL counts as UTF-16BE even without a BOM. An empty result means
// the item has no usable title.
func decodeTitle(raw []byte) string {
	if raw == nil {
		return ""
	}
	var s string
	hasBOM := len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF
	if hasBOM || bytes.IndexByte(raw, 0) >= 0 {
		if dec, err := utf16be.NewDecoder().Bytes(raw); err == nil {
			s = string(dec)
		} else {
			s = fallbackUTF8(raw)
		}
	} else {
		s = fallbackUTF8(raw)
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ReplaceAll(s, "\u3000", " ")
	return strings.TrimSpace(s)
}

func fallbackUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "?")
}
