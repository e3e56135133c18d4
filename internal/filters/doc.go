// Package filters implements stream decompression for PDF content streams.
//
// Only FlateDecode is supported. Streams using other filters (DCTDecode,
// JPXDecode, CCITTFaxDecode and so on) are image data as far as this
// extractor is concerned and are skipped by the caller.
package filters
