package contentstream

// TokenType represents the type of token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenString    // (hello), raw bytes between the parens, escapes unresolved
	TokenHexString // <48656C6C6F>, raw hex digits
	TokenNumber    // 123, -200, 3.14
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenString:
		return "String"
	case TokenHexString:
		return "HexString"
	case TokenNumber:
		return "Number"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value []byte
	Pos   int // position in the lexed slice
}

// Lexer extracts string and number tokens from a text block's bytes.
// It is not a content stream parser: operators, names, dictionaries and
// anything else that is not a literal string, hex string or number is
// skipped. The lexer is restartable via Reset.
type Lexer struct {
	data []byte
	pos  int
}

// NewLexer creates a new lexer over a text block's bytes.
func NewLexer(data []byte) *Lexer {
	return &Lexer{data: data}
}

// Reset rewinds the lexer to the start of its input.
func (l *Lexer) Reset() {
	l.pos = 0
}

// NextToken returns the next string or number token. All other input is
// skipped. A token with Type TokenEOF marks the end of the block.
func (l *Lexer) NextToken() Token {
	for l.pos < len(l.data) {
		b := l.data[l.pos]

		switch {
		case b == '(':
			return l.readString()

		case b == '<':
			// << opens a dictionary, not a hex string.
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
				l.pos += 2
				continue
			}
			if tok, ok := l.readHexString(); ok {
				return tok
			}

		case isDigit(b) || b == '-' || b == '+' || b == '.':
			if tok, ok := l.readNumber(); ok {
				return tok
			}

		default:
			l.pos++
		}
	}

	return Token{Type: TokenEOF, Pos: l.pos}
}

// readString reads a literal string. Escape sequences are carried through
// unresolved; the token value is the raw bytes between the parens.
// Nested balanced parens are not tracked: the first unescaped ')' ends
// the string, matching what real-world producers emit inside show-text
// operators.
func (l *Lexer) readString() Token {
	startPos := l.pos
	l.pos++ // consume '('

	contentStart := l.pos
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '\\':
			// Keep the backslash and whatever it escapes.
			l.pos++
			if l.pos < len(l.data) {
				l.pos++
			}
		case ')':
			tok := Token{Type: TokenString, Value: l.data[contentStart:l.pos], Pos: startPos}
			l.pos++ // consume ')'
			return tok
		default:
			l.pos++
		}
	}

	// Unterminated string: take what is there.
	return Token{Type: TokenString, Value: l.data[contentStart:], Pos: startPos}
}

// readHexString reads an angle-bracket hex string, returning the raw hex
// digits. Whitespace inside the brackets is skipped. A non-hex byte
// before the closing '>' means this was not a hex string after all; the
// lexer resumes scanning after the '<'.
func (l *Lexer) readHexString() (Token, bool) {
	startPos := l.pos
	pos := l.pos + 1 // past '<'

	var digits []byte
	for pos < len(l.data) {
		b := l.data[pos]

		if b == '>' {
			l.pos = pos + 1
			return Token{Type: TokenHexString, Value: digits, Pos: startPos}, true
		}
		if isWhitespace(b) {
			pos++
			continue
		}
		if !isHexDigit(b) {
			break
		}

		digits = append(digits, b)
		pos++
	}

	l.pos = startPos + 1
	return Token{}, false
}

// readNumber reads a signed integer or fractional decimal number.
func (l *Lexer) readNumber() (Token, bool) {
	startPos := l.pos
	pos := l.pos

	if l.data[pos] == '-' || l.data[pos] == '+' {
		pos++
	}

	digits := 0
	hasDecimal := false
	for pos < len(l.data) {
		b := l.data[pos]
		if isDigit(b) {
			digits++
			pos++
			continue
		}
		if b == '.' && !hasDecimal {
			hasDecimal = true
			pos++
			continue
		}
		break
	}

	if digits == 0 {
		// A bare sign or dot is operator noise, not a number.
		l.pos = startPos + 1
		return Token{}, false
	}

	tok := Token{Type: TokenNumber, Value: l.data[startPos:pos], Pos: startPos}
	l.pos = pos
	return tok, true
}

// Helper functions

func isWhitespace(b byte) bool {
	// PDF whitespace: space, tab, LF, CR, FF, null
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
