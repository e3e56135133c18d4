package personas

import "strings"

// Warning codes reported by extraction.
const (
	// WarnNoContentStreams: no stream in the document decompressed and
	// classified as text. Typical of scanned, image-only PDFs.
	WarnNoContentStreams = "no-content-streams"

	// WarnEmptyExtraction: streams were found but every decoded segment
	// was rejected by the cleaner.
	WarnEmptyExtraction = "empty-extraction"
)

// Warning is a non-fatal extraction diagnostic. Extraction succeeded but
// the result may be incomplete.
type Warning struct {
	Code    string
	Message string
}

// FormatWarnings renders warnings as a single semicolon-separated line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Message
	}
	return strings.Join(parts, "; ")
}
