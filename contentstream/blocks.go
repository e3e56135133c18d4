package contentstream

import "bytes"

// TextBlocks returns the byte ranges between each BT..ET operator pair in
// a decompressed content stream payload, in encounter order. The returned
// slices alias the payload; callers must not modify them.
//
// Matching is non-greedy: each BT pairs with the nearest following ET.
// A BT with no closing ET ends the scan.
func TextBlocks(payload []byte) [][]byte {
	var blocks [][]byte

	pos := 0
	for pos < len(payload) {
		bt := bytes.Index(payload[pos:], beginText)
		if bt < 0 {
			break
		}
		blockStart := pos + bt + len(beginText)

		et := bytes.Index(payload[blockStart:], endText)
		if et < 0 {
			break
		}

		blocks = append(blocks, payload[blockStart:blockStart+et])
		pos = blockStart + et + len(endText)
	}

	return blocks
}
