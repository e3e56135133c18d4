package contentstream

import (
	"bytes"
	"compress/zlib"
	"testing"
)

// buildStreamObject frames payload as a PDF stream object, compressing it
// with zlib when compress is true.
func buildStreamObject(t *testing.T, payload []byte, compress bool) []byte {
	t.Helper()

	data := payload
	if compress {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			t.Fatalf("compress: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		data = buf.Bytes()
	}

	var out bytes.Buffer
	out.WriteString("<< /Length 0 /Filter /FlateDecode >>\nstream\n")
	out.Write(data)
	out.WriteString("\nendstream\n")
	return out.Bytes()
}

func buildDocument(objects ...[]byte) []byte {
	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	for _, obj := range objects {
		out.Write(obj)
	}
	out.WriteString("%%EOF\n")
	return out.Bytes()
}

func collectSpans(data []byte) []*Span {
	var spans []*Span
	scanner := NewStreamScanner(data)
	for {
		span, ok := scanner.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}

func TestStreamScannerFindsTextStream(t *testing.T) {
	content := []byte("BT /F1 12 Tf (Hello World) Tj ET")
	doc := buildDocument(buildStreamObject(t, content, true))

	spans := collectSpans(doc)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if !bytes.Equal(spans[0].Payload, content) {
		t.Errorf("payload = %q, want %q", spans[0].Payload, content)
	}
	if spans[0].Start <= 0 || spans[0].End <= spans[0].Start {
		t.Errorf("bad span range [%d,%d)", spans[0].Start, spans[0].End)
	}
}

func TestStreamScannerSkipsUnusableStreams(t *testing.T) {
	text := []byte("BT (keep me here) Tj ET")

	tests := []struct {
		name    string
		objects [][]byte
		want    int
	}{
		{
			"uncompressed stream skipped",
			[][]byte{buildStreamObject(t, []byte("BT (plain) Tj ET"), false)},
			0,
		},
		{
			"graphics stream skipped",
			[][]byte{buildStreamObject(t, []byte("q 1 0 0 1 0 0 cm 10 10 m 20 20 l S Q"), true)},
			0,
		},
		{
			"text block without show operators skipped",
			[][]byte{buildStreamObject(t, []byte("BT ET"), true)},
			0,
		},
		{
			"text stream survives surrounding noise",
			[][]byte{
				buildStreamObject(t, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}, false),
				buildStreamObject(t, text, true),
				buildStreamObject(t, []byte("10 10 m 20 20 l S"), true),
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := collectSpans(buildDocument(tt.objects...))
			if len(spans) != tt.want {
				t.Errorf("expected %d spans, got %d", tt.want, len(spans))
			}
		})
	}
}

func TestStreamScannerStripsTrailingEOL(t *testing.T) {
	// Frame the compressed bytes with a CRLF before endstream; the
	// scanner must strip exactly that EOL or decompression fails.
	content := []byte("BT (crlf framed) Tj ET")
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(content)
	w.Close()

	var doc bytes.Buffer
	doc.WriteString("stream\r\n")
	doc.Write(buf.Bytes())
	doc.WriteString("\r\nendstream")

	spans := collectSpans(doc.Bytes())
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if !bytes.Equal(spans[0].Payload, content) {
		t.Errorf("payload = %q, want %q", spans[0].Payload, content)
	}
}

func TestStreamScannerMalformedFraming(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty buffer", ""},
		{"no streams", "%PDF-1.4 nothing to see"},
		{"stream keyword without EOL", "stream<<data>>endstream"},
		{"stream without endstream", "stream\nabcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if spans := collectSpans([]byte(tt.data)); len(spans) != 0 {
				t.Errorf("expected no spans, got %d", len(spans))
			}
		})
	}
}

func TestIsTextContent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"show text", "BT (x) Tj ET", true},
		{"array show", "BT [(x)] TJ ET", true},
		{"font selection only", "BT /F1 12 Tf ET", true},
		{"no text block", "(x) Tj", false},
		{"no show operators", "BT 1 0 0 1 0 0 Tm ET", false},
		{"graphics only", "q 10 10 m 20 20 l S Q", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTextContent([]byte(tt.payload)); got != tt.want {
				t.Errorf("IsTextContent(%q) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}
