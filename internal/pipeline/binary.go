/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

// BinaryThreshold is the fraction of control-byte occurrences above which
// the buffer is rejected as binary.
const BinaryThreshold = 0.01

func isBinaryControlByte(b byte) bool {
	if b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r' {
		return false
	}
	return b <= 0x08 || (b >= 0x0E && b <= 0x1F)
}

// IsBinary reports whether the proportion of disallowed control bytes in
// data exceeds BinaryThreshold.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	count := 0
	for _, b := range data {
		if isBinaryControlByte(b) {
			count++
		}
	}
	return float64(count)/float64(len(data)) > BinaryThreshold
}
