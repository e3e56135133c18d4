package contentstream

import (
	"reflect"
	"testing"
)

// collectTokens drains a lexer into a slice of (type, value) pairs.
func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	var tokens []Token
	lex := NewLexer([]byte(input))
	for {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func tokenStrings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type.String() + ":" + string(tok.Value)
	}
	return out
}

func TestLexerLiteralStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple string", "(Hello)", []string{"String:Hello"}},
		{"empty string", "()", []string{"String:"}},
		{"escaped paren kept raw", `(a\)b)`, []string{`String:a\)b`}},
		{"escaped backslash kept raw", `(a\\b)`, []string{`String:a\\b`}},
		{"octal escape kept raw", `(\050)`, []string{`String:\050`}},
		{"unescaped close terminates", "(ab)cd)", []string{"String:ab"}},
		{"unterminated string", "(abc", []string{"String:abc"}},
		{"two strings", "(a) (b)", []string{"String:a", "String:b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenStrings(collectTokens(t, tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexerHexStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple hex", "<48656C6C6F>", []string{"HexString:48656C6C6F"}},
		{"whitespace inside", "<48 65\n6C>", []string{"HexString:48656C"}},
		{"odd length kept raw", "<486>", []string{"HexString:486"}},
		{"empty hex", "<>", []string{"HexString:"}},
		{"dict delimiters skipped", "<</Length 42>>", []string{"Number:42"}},
		{"invalid hex byte aborts", "<48ZZ> (ok)", []string{"Number:48", "String:ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenStrings(collectTokens(t, tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"integer", "123", []string{"Number:123"}},
		{"negative", "-200", []string{"Number:-200"}},
		{"positive sign", "+7", []string{"Number:+7"}},
		{"fractional", "3.14", []string{"Number:3.14"}},
		{"leading dot", ".5", []string{"Number:.5"}},
		{"negative fractional", "-0.002", []string{"Number:-0.002"}},
		{"bare dash skipped", "- (x)", []string{"String:x"}},
		{"bare dot skipped", ". (x)", []string{"String:x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenStrings(collectTokens(t, tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexerSkipsOperators(t *testing.T) {
	// A realistic TJ operand sequence: names and operators are noise,
	// only strings and numbers come back.
	input := "/F1 12 Tf 72 720 Td (Hello) -250 (World) Tj"
	want := []string{
		"Number:1", // trailing digit of /F1; the lexer has no name token
		"Number:12",
		"Number:72",
		"Number:720",
		"String:Hello",
		"Number:-250",
		"String:World",
	}

	got := tokenStrings(collectTokens(t, input))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestLexerReset(t *testing.T) {
	lex := NewLexer([]byte("(a) 5"))

	var first []string
	for {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		first = append(first, tok.Type.String()+":"+string(tok.Value))
	}

	lex.Reset()

	var second []string
	for {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		second = append(second, tok.Type.String()+":"+string(tok.Value))
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("restarted lex differs: %v vs %v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("expected 2 tokens, got %v", first)
	}
}

func TestLexerEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "   \t\n\r  "},
		{"operators only", "BT ET q Q re f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer([]byte(tt.input))
			tok := lex.NextToken()
			if tok.Type != TokenEOF {
				t.Errorf("expected TokenEOF, got %v (%q)", tok.Type, tok.Value)
			}
		})
	}
}
