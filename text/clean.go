package text

import (
	"strings"
	"unicode"
)

// CleanConfig holds the plausibility thresholds applied to each decoded
// segment. All ratios are over the segment's rune count after whitespace
// normalization. The defaults discriminate natural-language text from
// numeric tables, glyph-index leakage and binary artifacts; they are
// tunable, not derived.
type CleanConfig struct {
	// MaxDenseLength is the length above which a segment must contain a
	// minimum number of spaces. Long runs with almost no word breaks are
	// typically font or glyph-table garbage.
	MaxDenseLength int

	// SpaceDivisor sets the space floor for long segments: a segment of
	// length n needs at least max(MinSpaces, n/SpaceDivisor) spaces.
	SpaceDivisor int

	// MinSpaces is the absolute space floor for long segments.
	MinSpaces int

	// MaxNonASCIIRatio rejects segments with too many bytes above 0x7E.
	MaxNonASCIIRatio float64

	// MinPrintableRatio rejects segments with too few printable characters.
	MinPrintableRatio float64

	// MinLetterRatio rejects segments that are mostly not letters.
	MinLetterRatio float64

	// MaxDigitRatio rejects segments that are mostly digits.
	MaxDigitRatio float64

	// MaxPunctRatio rejects segments that are mostly punctuation.
	MaxPunctRatio float64

	// MinWordLength is the length of the longest word a segment must
	// contain to be considered text at all.
	MinWordLength int
}

// DefaultCleanConfig returns the standard plausibility thresholds.
func DefaultCleanConfig() CleanConfig {
	return CleanConfig{
		MaxDenseLength:    280,
		SpaceDivisor:      25,
		MinSpaces:         2,
		MaxNonASCIIRatio:  0.08,
		MinPrintableRatio: 0.75,
		MinLetterRatio:    0.38,
		MaxDigitRatio:     0.24,
		MaxPunctRatio:     0.34,
		MinWordLength:     4,
	}
}

// asciiReplacements maps typographic characters to ASCII equivalents.
// The Mac-Roman forms show up when Quartz-produced PDFs are decoded as
// Latin-1; the Unicode forms come from UTF-16 hex strings.
var asciiReplacer = strings.NewReplacer(
	"Õ", "'",
	"Ò", `"`,
	"Ó", `"`,
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"—", "-",
	"–", "-",
)

// Cleaner normalizes raw decoded segments and rejects implausible ones.
// The zero-cost way to get one is NewCleaner; a Cleaner is immutable and
// safe for concurrent use.
type Cleaner struct {
	config CleanConfig
}

// NewCleaner returns a Cleaner with the default thresholds.
func NewCleaner() *Cleaner {
	return NewCleanerWithConfig(DefaultCleanConfig())
}

// NewCleanerWithConfig returns a Cleaner with custom thresholds.
func NewCleanerWithConfig(config CleanConfig) *Cleaner {
	return &Cleaner{config: config}
}

// Clean normalizes a raw decoded segment and reports whether it survives
// the plausibility checks. The returned string is only meaningful when
// ok is true.
//
// Normalization: NUL bytes stripped, CR/LF/TAB collapsed to spaces, curly
// quotes and dashes mapped to ASCII, repeated whitespace collapsed, ends
// trimmed. Rejection: any one failed check drops the segment.
func (c *Cleaner) Clean(segment string) (string, bool) {
	segment = strings.ReplaceAll(segment, "\x00", "")
	segment = strings.ReplaceAll(segment, "\r", " ")
	segment = strings.ReplaceAll(segment, "\n", " ")
	segment = strings.ReplaceAll(segment, "\t", " ")
	segment = asciiReplacer.Replace(segment)
	segment = strings.Join(strings.Fields(segment), " ")

	if segment == "" {
		return "", false
	}

	runes := []rune(segment)
	n := len(runes)

	// Long segments with almost no spaces are glyph-table leakage.
	if n > c.config.MaxDenseLength {
		floor := n / c.config.SpaceDivisor
		if floor < c.config.MinSpaces {
			floor = c.config.MinSpaces
		}
		if strings.Count(segment, " ") < floor {
			return "", false
		}
	}

	var nonASCII, printable, letters, digits, punct int
	for _, r := range runes {
		if r > 126 {
			nonASCII++
		}
		if (r > 31 && r < 127) || r == '\t' || r == '\n' || r == '\r' {
			printable++
		}
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsDigit(r) {
			digits++
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			punct++
		}
	}

	if ratio(nonASCII, n) > c.config.MaxNonASCIIRatio {
		return "", false
	}
	if ratio(printable, n) < c.config.MinPrintableRatio {
		return "", false
	}
	if !hasLetterRun(segment) {
		return "", false
	}
	if ratio(letters, n) < c.config.MinLetterRatio {
		return "", false
	}
	if ratio(digits, n) > c.config.MaxDigitRatio {
		return "", false
	}
	if ratio(punct, n) > c.config.MaxPunctRatio {
		return "", false
	}
	if !hasLongWord(segment, c.config.MinWordLength) {
		return "", false
	}

	return segment, true
}

func ratio(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

// hasLetterRun reports whether the segment contains at least two
// consecutive ASCII letters, the minimum for a recognizable word.
func hasLetterRun(s string) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if isASCIILetter(s[i]) {
			run++
			if run >= 2 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

// hasLongWord reports whether the segment contains a word (a run of
// ASCII letters and apostrophes) of at least minLen characters.
func hasLongWord(s string, minLen int) bool {
	run := 0
	for i := 0; i < len(s); i++ {
		if isASCIILetter(s[i]) || s[i] == '\'' {
			run++
			if run >= minLen {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
