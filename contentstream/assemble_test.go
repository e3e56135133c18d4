package contentstream

import "testing"

// lexTokens is a convenience for building a token slice from TJ array syntax.
func lexTokens(t *testing.T, input string) []Token {
	t.Helper()
	return lexAll([]byte(input))
}

func TestAssembleArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"word gap inserts space", "(Hello) -200 (World)", "Hello World"},
		{"kerning is silent", "(Hello) -50 (World)", "HelloWorld"},
		{"threshold is exclusive", "(Hello) -120 (World)", "HelloWorld"},
		{"just under threshold", "(Hello) -120.5 (World)", "Hello World"},
		{"positive adjustment is silent", "(Hello) 300 (World)", "HelloWorld"},
		{"multiple gaps", "(a) -300 (b) -300 (c)", "a b c"},
		{"hex strings participate", "<48692C> -500 (there)", "Hi, there"},
		{"strings only", "(ab) (cd)", "abcd"},
		{"numbers only", "-500 -1000", "  "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssembleArray(lexTokens(t, tt.input), DefaultWordGap)
			if got != tt.want {
				t.Errorf("AssembleArray(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAssembleArrayCustomThreshold(t *testing.T) {
	tokens := lexTokens(t, "(Hello) -80 (World)")

	if got := AssembleArray(tokens, DefaultWordGap); got != "HelloWorld" {
		t.Errorf("default threshold: got %q, want %q", got, "HelloWorld")
	}
	if got := AssembleArray(tokens, -60); got != "Hello World" {
		t.Errorf("threshold -60: got %q, want %q", got, "Hello World")
	}
}
