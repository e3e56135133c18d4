package filters

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data.
// This is the only compression filter the extractor supports; content
// streams produced by mainstream PDF generators are almost always
// Flate-compressed. Some producers write raw deflate data without the
// two-byte zlib header, so that form is accepted as a fallback.
func FlateDecode(data []byte) ([]byte, error) {
	decompressed, err := zlibDecompress(data)
	if err == nil {
		return decompressed, nil
	}

	decompressed, rawErr := rawDeflateDecompress(data)
	if rawErr == nil {
		return decompressed, nil
	}

	return nil, fmt.Errorf("flate decode failed: %w", err)
}

// zlibDecompress decompresses zlib-wrapped deflate data using the standard library.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}

// rawDeflateDecompress decompresses headerless deflate data.
func rawDeflateDecompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	var buf bytes.Buffer
	_, err := io.Copy(&buf, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}
