/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

// DetectUTF8 walks data left to right validating UTF-8 byte sequences. A
// truncated final sequence at end-of-buffer is tolerated (max_bytes may cut
// a document mid-rune). Returns a result only if at least one valid
// multi-byte sequence was found; pure-ASCII input is left to the ASCII
// stage.
func DetectUTF8(data []byte) (Result, bool) {
	i := 0
	mbBytes := 0
	sawMultibyte := false

	for i < len(data) {
		b := data[i]
		switch {
		case b < 0x80:
			i++
		case b >= 0xC2 && b <= 0xDF:
			n, ok := consumeContinuation(data, i, 1, nil)
			if !ok {
				if truncatedTail(data, i, 2) {
					mbBytes += len(data) - i
					sawMultibyte = true
					i = len(data)
					continue
				}
				return Result{}, false
			}
			mbBytes += n
			sawMultibyte = true
			i += n
		case b >= 0xE0 && b <= 0xEF:
			var second *byteRange
			switch b {
			case 0xE0:
				second = &byteRange{0xA0, 0xBF}
			case 0xED:
				second = &byteRange{0x80, 0x9F}
			}
			n, ok := consumeContinuation(data, i, 2, second)
			if !ok {
				if truncatedTail(data, i, 3) {
					mbBytes += len(data) - i
					sawMultibyte = true
					i = len(data)
					continue
				}
				return Result{}, false
			}
			mbBytes += n
			sawMultibyte = true
			i += n
		case b >= 0xF0 && b <= 0xF4:
			var second *byteRange
			switch b {
			case 0xF0:
				second = &byteRange{0x90, 0xBF}
			case 0xF4:
				second = &byteRange{0x80, 0x8F}
			}
			n, ok := consumeContinuation(data, i, 3, second)
			if !ok {
				if truncatedTail(data, i, 4) {
					mbBytes += len(data) - i
					sawMultibyte = true
					i = len(data)
					continue
				}
				return Result{}, false
			}
			mbBytes += n
			sawMultibyte = true
			i += n
		default:
			return Result{}, false
		}
	}

	if !sawMultibyte {
		return Result{}, false
	}
	ratio := float64(mbBytes) / float64(len(data))
	confidence := 0.80 + 0.19*min1(ratio*6, 1.0)
	if confidence > 0.99 {
		confidence = 0.99
	}
	return Result{Encoding: "utf-8", Confidence: confidence}, true
}

type byteRange struct{ lo, hi byte }

// consumeContinuation validates `count` continuation bytes following the
// lead byte at data[pos], with an optional tightened range for the first
// continuation byte (used to reject overlongs/surrogates/out-of-range).
// Returns the total sequence length (lead + continuations) on success.
func consumeContinuation(data []byte, pos, count int, first *byteRange) (int, bool) {
	if pos+1+count > len(data) {
		return 0, false
	}
	for k := 0; k < count; k++ {
		c := data[pos+1+k]
		if k == 0 && first != nil {
			if c < first.lo || c > first.hi {
				return 0, false
			}
			continue
		}
		if c < 0x80 || c > 0xBF {
			return 0, false
		}
	}
	return 1 + count, true
}

// truncatedTail reports whether the lead byte at pos is the start of a
// well-formed-so-far sequence that simply runs off the end of the buffer.
func truncatedTail(data []byte, pos, seqLen int) bool {
	remaining := len(data) - pos
	if remaining >= seqLen {
		return false
	}
	for k := 1; k < remaining; k++ {
		c := data[pos+k]
		if c < 0x80 || c > 0xBF {
			return false
		}
	}
	return true
}

func min1(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
