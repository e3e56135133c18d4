// Package personas extracts plain text from persona source documents to
// build dossier files.
//
// The PDF path works without a PDF library or object model: it scans for
// stream framing, Flate-decompresses whatever yields, keeps streams that
// draw text, and decodes the show-text operators inside their BT..ET
// blocks. Decoded segments pass a plausibility cleaner before assembly,
// so image-heavy and malformed documents degrade to less text rather
// than errors. DOCX sources are delegated to an OS conversion utility
// and HTML sources to a parse-tree walk; both reuse the same cleaner.
//
// Basic usage:
//
//	extracted, warnings, err := personas.Open("insight.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println(personas.FormatWarnings(warnings))
//	}
//
// With options:
//
//	extracted, _, err := personas.Open("insight.pdf").
//	    WithWordGap(-100).
//	    Text()
//
// The output is best-effort linear text in byte-stream encounter order.
// PDF content streams carry no guaranteed layout order, so this is not
// necessarily visual reading order; that is an inherent limit of
// extraction without a document model, not a defect.
package personas

import "github.com/UXdave/Synthetic-personas/format"

// Open prepares an Extractor for the given source file. The format is
// detected from the file extension; extraction happens on the terminal
// Text call.
//
// Example:
//
//	text, warnings, err := personas.Open("questionnaire.docx").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromBytes prepares an Extractor over an in-memory document. DOCX
// sources cannot be extracted this way because the external converter
// needs a file path.
func FromBytes(data []byte, f format.Format) *Extractor {
	return &Extractor{
		data:    data,
		format:  f,
		options: defaultOptions(),
	}
}

// MustText wraps a Text call and panics on error, discarding warnings.
// Intended for scripts and tests.
//
// Example:
//
//	text := personas.MustText(personas.Open("insight.pdf").Text())
func MustText(val string, _ []Warning, err error) string {
	if err != nil {
		panic(err)
	}
	return val
}
