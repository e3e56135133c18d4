package contentstream

import (
	"strconv"
	"strings"
)

// DefaultWordGap is the kerning threshold, in thousandths of text-space
// units, below which a numeric adjustment in an array show-text operator
// is treated as an inter-word gap. Adjustments at or above the threshold
// are ordinary kerning and contribute nothing.
//
// The value is an empirical heuristic. Text-space units scale with font
// size, so one global threshold can over- or under-insert spaces on
// documents set in unusual sizes; that limitation is deliberate and
// documented rather than hidden behind font metrics this extractor does
// not have.
const DefaultWordGap = -120

// AssembleArray reconstructs the text of one array show-text operator
// from its token sequence. String tokens are decoded and concatenated; a
// number token strictly below wordGap inserts a single space.
func AssembleArray(tokens []Token, wordGap float64) string {
	var b strings.Builder

	for _, tok := range tokens {
		switch tok.Type {
		case TokenString:
			b.WriteString(DecodeLiteral(tok.Value))
		case TokenHexString:
			b.WriteString(DecodeHex(tok.Value))
		case TokenNumber:
			v, err := strconv.ParseFloat(string(tok.Value), 64)
			if err != nil {
				continue
			}
			if v < wordGap {
				b.WriteByte(' ')
			}
		}
	}

	return b.String()
}
