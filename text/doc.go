// Package text filters decoded segments for plausibility and assembles
// the surviving ones into document text.
//
// Heuristic extraction leaks noise: glyph-table garbage, numeric tables,
// binary artifacts that happened to decode. The Cleaner normalizes each
// raw segment and rejects the ones that do not look like natural-language
// text, using a set of ratio thresholds exposed on CleanConfig. The
// thresholds are tuned constants, not derived values; callers with
// unusual corpora can adjust them.
//
//	cleaner := text.NewCleaner()
//	if cleaned, ok := cleaner.Clean(segment); ok {
//	    // keep cleaned
//	}
//
// Dedupe removes exact repeats (headers and footers recur on every page
// of a document) while preserving first-seen order.
package text
