/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

// isAllowedASCII reports whether b is tab, newline, carriage return, or in
// the printable ASCII range 0x20..0x7E.
func isAllowedASCII(b byte) bool {
	if b == '\t' || b == '\n' || b == '\r' {
		return true
	}
	return b >= 0x20 && b <= 0x7E
}

// DetectASCII reports whether every byte in data is plain printable ASCII
// or common whitespace. Confidence 1.0 on match.
func DetectASCII(data []byte) (Result, bool) {
	if len(data) == 0 {
		return Result{}, false
	}
	for _, b := range data {
		if !isAllowedASCII(b) {
			return Result{}, false
		}
	}
	return Result{Encoding: "ascii", Confidence: 1.0}, true
}
