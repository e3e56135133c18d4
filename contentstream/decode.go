package contentstream

import (
	"bytes"
	"encoding/hex"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	latin1Decoder  = charmap.ISO8859_1
	utf16beDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// DecodeLiteral decodes the raw bytes of a literal string token into text.
//
// Backslash escapes for n, r, t, b, f, parens and backslash map to their
// control or literal equivalents, and one to three octal digits decode as
// that code point. Any other escaped character is kept as the character
// itself: nonconformant producers emit escapes the PDF grammar never
// defined, and dropping them loses real text.
//
// The decoded bytes are interpreted as Latin-1: a literal string with no
// encoding information is single-byte text as far as this extractor is
// concerned.
func DecodeLiteral(raw []byte) string {
	var buf bytes.Buffer
	buf.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		b := raw[i]
		if b != '\\' {
			buf.WriteByte(b)
			continue
		}

		i++
		if i >= len(raw) {
			break
		}

		switch c := raw[i]; c {
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case 't':
			buf.WriteByte('\t')
		case 'b':
			buf.WriteByte('\b')
		case 'f':
			buf.WriteByte('\f')
		case '(', ')', '\\':
			buf.WriteByte(c)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			val := c - '0'
			for n := 0; n < 2 && i+1 < len(raw) && isOctalDigit(raw[i+1]); n++ {
				i++
				val = val*8 + (raw[i] - '0')
			}
			buf.WriteByte(val)
		default:
			// Unknown escape: keep the escaped character itself.
			buf.WriteByte(c)
		}
	}

	return decodeLatin1(buf.Bytes())
}

// DecodeHex decodes the raw digits of a hex string token into text.
//
// An odd-length digit run is right-padded with a zero nibble. If the
// decoded bytes contain a NUL, the string is taken to be UTF-16BE (the
// usual convention for non-Latin text); otherwise it is Latin-1. Either
// way decoding is permissive: invalid sequences are dropped rather than
// failing the document.
func DecodeHex(digits []byte) string {
	if len(digits) == 0 {
		return ""
	}

	if len(digits)%2 == 1 {
		padded := make([]byte, 0, len(digits)+1)
		padded = append(padded, digits...)
		padded = append(padded, '0')
		digits = padded
	}

	raw := make([]byte, len(digits)/2)
	if _, err := hex.Decode(raw, digits); err != nil {
		return ""
	}

	if bytes.IndexByte(raw, 0) >= 0 {
		return decodeUTF16BE(raw)
	}

	return decodeLatin1(raw)
}

// decodeLatin1 maps single bytes to their Unicode code points. It cannot fail.
func decodeLatin1(raw []byte) string {
	out, err := latin1Decoder.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}

// decodeUTF16BE decodes big-endian UTF-16, dropping invalid sequences.
func decodeUTF16BE(raw []byte) string {
	out, err := utf16beDecoder.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	// The decoder substitutes U+FFFD for broken sequences; drop those to
	// match permissive decoding.
	return strings.ReplaceAll(string(out), "�", "")
}
