/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "bytes"

type bomEntry struct {
	pattern  []byte
	encoding string
	isUTF32  bool
}

// boms is ordered longest-prefix-first so a 4-byte UTF-32 mark is tried
// before the 2-byte UTF-16 mark it overlaps with.
var boms = []bomEntry{
	{pattern: []byte{0x00, 0x00, 0xFE, 0xFF}, encoding: "utf-32-be", isUTF32: true},
	{pattern: []byte{0xFF, 0xFE, 0x00, 0x00}, encoding: "utf-32-le", isUTF32: true},
	{pattern: []byte{0xEF, 0xBB, 0xBF}, encoding: "utf-8-sig"},
	{pattern: []byte{0xFE, 0xFF}, encoding: "utf-16-be"},
	{pattern: []byte{0xFF, 0xFE}, encoding: "utf-16-le"},
}

// DetectBOM matches the longest applicable byte-order mark. A UTF-32 match
// additionally requires the remaining payload length to be a multiple of 4;
// otherwise detection falls through to the next candidate in the list
// (this is how a 6-byte "FF FE 00 00 30 00" buffer correctly reports
// utf-16-le instead of a misaligned utf-32-le).
func DetectBOM(data []byte) (Result, bool) {
	for _, b := range boms {
		if len(data) < len(b.pattern) || !bytes.Equal(data[:len(b.pattern)], b.pattern) {
			continue
		}
		if b.isUTF32 {
			remaining := len(data) - len(b.pattern)
			if remaining%4 != 0 {
				continue
			}
		}
		return Result{Encoding: b.encoding, Confidence: BOMConfidence}, true
	}
	return Result{}, false
}
