package personas

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/UXdave/Synthetic-personas/contentstream"
	"github.com/UXdave/Synthetic-personas/docx"
	"github.com/UXdave/Synthetic-personas/format"
	"github.com/UXdave/Synthetic-personas/htmldoc"
	"github.com/UXdave/Synthetic-personas/text"
)

// UnsupportedFormatError reports a source file whose type has no
// extractor. It is fatal for that source.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file extension: %s", e.Filename)
}

// Extractor provides a fluent interface for extracting text from persona
// source documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source: either a filename or an in-memory buffer.
	filename string
	data     []byte
	format   format.Format

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		format:   e.format,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// WithCleanConfig overrides the segment plausibility thresholds.
//
// Example:
//
//	cfg := text.DefaultCleanConfig()
//	cfg.MaxDigitRatio = 0.5
//	extracted, _, err := personas.Open("tables.pdf").WithCleanConfig(cfg).Text()
func (e *Extractor) WithCleanConfig(cfg text.CleanConfig) *Extractor {
	newExt := e.clone()
	newExt.options.clean = cfg
	return newExt
}

// WithWordGap overrides the kerning threshold (in thousandths of
// text-space units) below which an array-show adjustment becomes a word
// space. The default is contentstream.DefaultWordGap.
func (e *Extractor) WithWordGap(gap float64) *Extractor {
	newExt := e.clone()
	newExt.options.wordGap = gap
	return newExt
}

// WithConverter overrides the external DOCX conversion command. The
// source path is appended as the final argument.
func (e *Extractor) WithConverter(command []string) *Extractor {
	newExt := e.clone()
	newExt.options.converter = append([]string(nil), command...)
	return newExt
}

// Text extracts and returns the document's text. This is a terminal
// operation. It returns the extracted text, any warnings encountered
// (non-fatal issues where extraction succeeded but may be incomplete),
// and an error if extraction failed outright.
func (e *Extractor) Text() (string, []Warning, error) {
	return e.TextContext(context.Background())
}

// TextContext is Text with a caller-supplied context, which bounds the
// external DOCX conversion call. The pure PDF/HTML computation does not
// block and is not cancellable.
func (e *Extractor) TextContext(ctx context.Context) (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	switch e.format {
	case format.PDF:
		data, err := e.sourceBytes()
		if err != nil {
			return "", nil, err
		}
		extracted, warnings := extractPDF(data, e.options)
		return extracted, append(e.warnings, warnings...), nil

	case format.DOCX:
		if e.filename == "" {
			return "", nil, fmt.Errorf("DOCX extraction requires a file path")
		}
		conv := docx.NewConverterWithCommand(e.options.converter)
		converted, err := conv.Convert(ctx, e.filename)
		if err != nil {
			return "", nil, err
		}
		return cleanLines(strings.Split(converted, "\n"), e.options.clean), e.warnings, nil

	case format.HTML:
		data, err := e.sourceBytes()
		if err != nil {
			return "", nil, err
		}
		lines, err := htmldoc.Extract(strings.NewReader(string(data)))
		if err != nil {
			return "", nil, fmt.Errorf("parsing HTML: %w", err)
		}
		return cleanLines(lines, e.options.clean), e.warnings, nil

	default:
		return "", nil, &UnsupportedFormatError{Filename: e.filename}
	}
}

// sourceBytes returns the in-memory buffer or reads the source file.
func (e *Extractor) sourceBytes() ([]byte, error) {
	if e.data != nil {
		return e.data, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no source specified")
	}
	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", e.filename, err)
	}
	return data, nil
}

// extractPDF runs the content-stream pipeline over a raw PDF buffer:
// locate and decompress streams, keep text streams, decode show-text
// segments, clean, dedupe, assemble. The buffer is never modified, so
// repeated extraction over the same bytes is byte-identical.
func extractPDF(data []byte, opts ExtractOptions) (string, []Warning) {
	cleaner := text.NewCleanerWithConfig(opts.clean)

	var segments []string
	streams := 0

	scanner := contentstream.NewStreamScanner(data)
	for {
		span, ok := scanner.Next()
		if !ok {
			break
		}
		streams++

		for _, raw := range contentstream.Segments(span.Payload, opts.wordGap) {
			if cleaned, ok := cleaner.Clean(raw); ok {
				segments = append(segments, cleaned)
			}
		}
	}

	var warnings []Warning
	if streams == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoContentStreams,
			Message: "no usable content streams found; document may be image-only",
		})
	} else if len(segments) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnEmptyExtraction,
			Message: "content streams found but no segment passed cleaning",
		})
	}

	return text.Assemble(segments), warnings
}

// cleanLines filters line-oriented converter output through the segment
// cleaner and joins the survivors. Unlike the PDF path there is no
// deduplication: repeated lines in a converted document are real.
func cleanLines(lines []string, cfg text.CleanConfig) string {
	cleaner := text.NewCleanerWithConfig(cfg)

	var kept []string
	for _, line := range lines {
		if cleaned, ok := cleaner.Clean(line); ok {
			kept = append(kept, cleaned)
		}
	}

	return strings.Join(kept, "\n")
}
