package contentstream

import (
	"bytes"

	"github.com/UXdave/Synthetic-personas/internal/filters"
)

var (
	streamMarker    = []byte("stream")
	endstreamMarker = []byte("endstream")
	beginText       = []byte("BT")
	endText         = []byte("ET")
)

// Span is a located content stream: the byte range it occupies in the
// original document plus its decompressed payload. Spans returned by
// StreamScanner have already passed text classification.
type Span struct {
	Start   int // offset of the first payload byte in the document
	End     int // offset just past the last payload byte
	Payload []byte
}

// StreamScanner walks a raw PDF buffer and yields the content streams
// that decompress successfully and contain text-drawing operators.
// It is a one-shot forward scanner; create a new one to rescan.
type StreamScanner struct {
	data []byte
	pos  int
}

// NewStreamScanner creates a scanner over a raw document buffer.
// The buffer is read-only; the scanner never modifies or copies it.
func NewStreamScanner(data []byte) *StreamScanner {
	return &StreamScanner{data: data}
}

// Next returns the next text content stream, or ok=false when the buffer
// is exhausted. Streams that cannot be decompressed or that fail text
// classification are skipped, not reported.
func (s *StreamScanner) Next() (*Span, bool) {
	for {
		start, end, ok := s.nextRawStream()
		if !ok {
			return nil, false
		}

		payload, err := filters.FlateDecode(s.data[start:end])
		if err != nil {
			// Unsupported filter or image data. Skip.
			continue
		}

		if !IsTextContent(payload) {
			continue
		}

		return &Span{Start: start, End: end, Payload: payload}, true
	}
}

// nextRawStream locates the next "stream" keyword followed by an end-of-line
// sequence and returns the payload range up to the matching "endstream",
// with exactly one trailing CRLF or LF stripped (PDF stream framing).
func (s *StreamScanner) nextRawStream() (start, end int, ok bool) {
	for s.pos < len(s.data) {
		idx := bytes.Index(s.data[s.pos:], streamMarker)
		if idx < 0 {
			s.pos = len(s.data)
			return 0, 0, false
		}

		markerEnd := s.pos + idx + len(streamMarker)
		s.pos = markerEnd

		// The keyword must be followed by LF or CRLF; anything else is a
		// coincidental byte match (e.g. inside compressed data).
		payloadStart := markerEnd
		if payloadStart < len(s.data) && s.data[payloadStart] == '\r' {
			payloadStart++
		}
		if payloadStart >= len(s.data) || s.data[payloadStart] != '\n' {
			continue
		}
		payloadStart++

		endIdx := bytes.Index(s.data[payloadStart:], endstreamMarker)
		if endIdx < 0 {
			continue
		}
		payloadEnd := payloadStart + endIdx

		// Strip one trailing EOL before the endstream keyword.
		if payloadEnd >= 2 && s.data[payloadEnd-2] == '\r' && s.data[payloadEnd-1] == '\n' {
			payloadEnd -= 2
		} else if payloadEnd >= 1 && s.data[payloadEnd-1] == '\n' {
			payloadEnd--
		}

		s.pos = payloadStart + endIdx + len(endstreamMarker)
		return payloadStart, payloadEnd, true
	}

	return 0, 0, false
}

// IsTextContent reports whether a decompressed stream payload looks like a
// text content stream: it must contain a BT..ET delimiter pair and at
// least one text-showing or font-selection operator. Image and vector
// graphics streams that happen to decompress are rejected here; text
// streams using only exotic operators are lost, which is acceptable.
func IsTextContent(payload []byte) bool {
	if !bytes.Contains(payload, beginText) || !bytes.Contains(payload, endText) {
		return false
	}

	return bytes.Contains(payload, []byte("Tj")) ||
		bytes.Contains(payload, []byte("TJ")) ||
		bytes.Contains(payload, []byte("Tf"))
}
