package text

import "strings"

// Dedupe removes exact-string repeats from a segment sequence, keeping
// the first occurrence of each value in its original position. Repeated
// headers and footers collapse to a single line this way.
func Dedupe(segments []string) []string {
	if len(segments) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(segments))
	deduped := make([]string, 0, len(segments))

	for _, segment := range segments {
		if _, ok := seen[segment]; ok {
			continue
		}
		seen[segment] = struct{}{}
		deduped = append(deduped, segment)
	}

	return deduped
}

// Assemble joins deduplicated segments with single newlines into the
// document's extracted text. No further normalization is applied.
func Assemble(segments []string) string {
	return strings.Join(Dedupe(segments), "\n")
}
