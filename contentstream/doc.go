// Package contentstream extracts text from PDF content streams without a
// full PDF object model.
//
// Instead of parsing the cross-reference table and object graph, the
// package scans a raw document buffer for stream framing, decompresses
// whatever looks like Flate data, and keeps only streams that contain
// text-drawing operators. Within each accepted stream it isolates BT..ET
// text blocks and pulls show-text strings out of them.
//
// # Pipeline
//
//	scanner := contentstream.NewStreamScanner(pdfBytes)
//	for {
//	    span, ok := scanner.Next()
//	    if !ok {
//	        break
//	    }
//	    segments := contentstream.Segments(span.Payload, contentstream.DefaultWordGap)
//	    // feed segments to the text cleaner
//	}
//
// Streams that fail decompression or that carry no text operators are
// skipped silently; with no authoritative object graph there is no way to
// tell a broken text stream from an image stream, and treating either as
// an error would fail whole documents over content this extractor never
// wanted in the first place.
//
// # Supported grammar
//
// The lexer recognizes exactly three token forms inside a text block:
// literal strings "(like this)", hex strings "<4C696B65>", and signed
// decimal numbers. Operators, names and dictionaries are skipped. This is
// deliberate: the package is a string/number extractor, not a content
// stream interpreter.
package contentstream
