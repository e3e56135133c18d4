package personas

import (
	"github.com/UXdave/Synthetic-personas/contentstream"
	"github.com/UXdave/Synthetic-personas/docx"
	"github.com/UXdave/Synthetic-personas/text"
)

// ExtractOptions holds configuration for text extraction.
type ExtractOptions struct {
	// Segment plausibility thresholds.
	clean text.CleanConfig

	// Kerning threshold for word-space insertion in array show operators.
	wordGap float64

	// External DOCX conversion command.
	converter []string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		clean:     text.DefaultCleanConfig(),
		wordGap:   contentstream.DefaultWordGap,
		converter: docx.DefaultCommand,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		clean:   o.clean,
		wordGap: o.wordGap,
	}

	if o.converter != nil {
		newOpts.converter = make([]string, len(o.converter))
		copy(newOpts.converter, o.converter)
	}

	return newOpts
}
