package contentstream

import (
	"bytes"
	"regexp"
	"strings"
)

// kerningArtifact matches the ") -12 (" joints that survive when a show
// operator's array syntax leaks into a decoded string.
var kerningArtifact = regexp.MustCompile(`\)\s*-?\d+(?:\.\d+)?\s*\(`)

// Segments extracts the raw decoded text segments from a decompressed
// content stream payload, in encounter order. One segment is produced per
// show-text operator: a literal or hex string followed by Tj, ' or ", or
// an array followed by TJ (assembled with AssembleArray using wordGap).
//
// Segments are decoded and scrubbed of kerning artifacts but not yet
// cleaned; plausibility filtering belongs to the text package.
func Segments(payload []byte, wordGap float64) []string {
	var segments []string

	for _, block := range TextBlocks(payload) {
		segments = append(segments, blockSegments(block, wordGap)...)
	}

	return segments
}

// blockSegments walks one BT..ET block and decodes each show-text operand.
func blockSegments(block []byte, wordGap float64) []string {
	var segments []string

	appendSegment := func(decoded string) {
		if s := scrubArtifacts(decoded); s != "" {
			segments = append(segments, s)
		}
	}

	for i := 0; i < len(block); {
		switch block[i] {
		case '(':
			tok, next, ok := tokenAt(block, i)
			if !ok || tok.Type != TokenString {
				i++
				continue
			}
			op, after := peekOperator(block, next)
			if op == "Tj" || op == "'" || op == "\"" {
				appendSegment(DecodeLiteral(tok.Value))
				i = after
			} else {
				i = next
			}

		case '<':
			if i+1 < len(block) && block[i+1] == '<' {
				i += 2
				continue
			}
			tok, next, ok := tokenAt(block, i)
			if !ok || tok.Type != TokenHexString {
				i++
				continue
			}
			op, after := peekOperator(block, next)
			if op == "Tj" {
				appendSegment(DecodeHex(tok.Value))
				i = after
			} else {
				i = next
			}

		case '[':
			// Non-greedy: the first ']' closes the array. A ']' inside a
			// literal string defeats this; such arrays simply fail the
			// TJ check.
			end := bytes.IndexByte(block[i+1:], ']')
			if end < 0 {
				i++
				continue
			}
			inner := block[i+1 : i+1+end]
			next := i + 1 + end + 1

			op, after := peekOperator(block, next)
			if op == "TJ" {
				appendSegment(AssembleArray(lexAll(inner), wordGap))
				i = after
			} else {
				i = next
			}

		default:
			i++
		}
	}

	return segments
}

// tokenAt lexes a single token starting exactly at offset i.
func tokenAt(block []byte, i int) (Token, int, bool) {
	lex := &Lexer{data: block, pos: i}
	tok := lex.NextToken()
	if tok.Type == TokenEOF || tok.Pos != i {
		return Token{}, i, false
	}
	return tok, lex.pos, true
}

// lexAll tokenizes an entire byte range.
func lexAll(data []byte) []Token {
	var tokens []Token
	lex := NewLexer(data)
	for {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// peekOperator skips whitespace after a token and reads the operator that
// follows: either a run of letters (Tj, TJ, Td, ...) or one of the
// single-quote show operators. Returns the operator and the offset just
// past it.
func peekOperator(block []byte, pos int) (string, int) {
	for pos < len(block) && isWhitespace(block[pos]) {
		pos++
	}
	if pos >= len(block) {
		return "", pos
	}

	if block[pos] == '\'' || block[pos] == '"' {
		return string(block[pos]), pos + 1
	}

	start := pos
	for pos < len(block) && isOperatorChar(block[pos]) {
		pos++
	}
	if pos == start {
		return "", start
	}
	return string(block[start:pos]), pos
}

func isOperatorChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '*'
}

// scrubArtifacts removes leftover array-show syntax from a decoded
// segment: kerning joints and stray parens, then collapses whitespace.
func scrubArtifacts(s string) string {
	s = kerningArtifact.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return strings.Join(strings.Fields(s), " ")
}
