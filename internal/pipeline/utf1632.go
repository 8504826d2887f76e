/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "golang.org/x/text/encoding/unicode"

const (
	patternConfidence    = 0.95
	utf1632SampleSize    = 4096
	minBytesUTF32        = 16
	minBytesUTF16        = 10
	utf16MinNullFraction = 0.10
)

// DetectUTF1632Patterns recognises BOM-less UTF-16/UTF-32 text by its
// characteristic null-byte stride. UTF-32 is checked first, by null
// pattern alone (big-endian before little-endian); if it does not match,
// UTF-16 is checked, and when both UTF-16 endiannesses qualify the one
// whose decoded text scores higher on textQuality wins. Ported from the teacher's guessUTF16/evaluateUTF16 null-byte
// heuristics, generalised to also cover UTF-32.
func DetectUTF1632Patterns(data []byte) (Result, bool) {
	sample := data
	if len(sample) > utf1632SampleSize {
		sample = sample[:utf1632SampleSize]
	}

	if r, ok := checkUTF32(sample); ok {
		return r, true
	}
	return checkUTF16(sample)
}

func checkUTF32(sample []byte) (Result, bool) {
	if len(sample) < minBytesUTF32 {
		return Result{}, false
	}
	units := len(sample) / 4
	if units == 0 {
		return Result{}, false
	}

	beNulls, leNulls := 0, 0
	for u := 0; u < units; u++ {
		off := u * 4
		if sample[off] == 0 && sample[off+1] == 0 {
			beNulls++
		}
		if sample[off+2] == 0 && sample[off+3] == 0 {
			leNulls++
		}
	}

	beQualifies := beNulls == units
	leQualifies := leNulls == units
	if !beQualifies && !leQualifies {
		return Result{}, false
	}

	// Require the second-most-null byte offset to cover >50% of units, to
	// avoid matching on data that merely has sparse zero bytes.
	beSecondNull, leSecondNull := 0, 0
	for u := 0; u < units; u++ {
		off := u * 4
		if sample[off+1] == 0 {
			beSecondNull++
		}
		if sample[off+2] == 0 {
			leSecondNull++
		}
	}

	if beQualifies && float64(beSecondNull)/float64(units) > 0.5 {
		return Result{Encoding: "utf-32-be", Confidence: patternConfidence}, true
	}
	if leQualifies && float64(leSecondNull)/float64(units) > 0.5 {
		return Result{Encoding: "utf-32-le", Confidence: patternConfidence}, true
	}
	return Result{}, false
}

func checkUTF16(sample []byte) (Result, bool) {
	if len(sample) < minBytesUTF16 {
		return Result{}, false
	}
	units := len(sample) / 2
	if units == 0 {
		return Result{}, false
	}

	evenNulls, oddNulls := 0, 0
	for u := 0; u < units; u++ {
		off := u * 2
		if sample[off] == 0 {
			evenNulls++
		}
		if sample[off+1] == 0 {
			oddNulls++
		}
	}

	beCandidate := float64(evenNulls)/float64(units) >= utf16MinNullFraction
	leCandidate := float64(oddNulls)/float64(units) >= utf16MinNullFraction

	switch {
	case beCandidate && !leCandidate:
		if decoded, ok := decodeAndValidateUTF16(sample, unicode.BigEndian); ok {
			return Result{Encoding: "utf-16-be", Confidence: patternConfidence}, looksLikeText(decoded)
		}
		return Result{}, false
	case leCandidate && !beCandidate:
		if decoded, ok := decodeAndValidateUTF16(sample, unicode.LittleEndian); ok {
			return Result{Encoding: "utf-16-le", Confidence: patternConfidence}, looksLikeText(decoded)
		}
		return Result{}, false
	case beCandidate && leCandidate:
		beText, beOK := decodeAndValidateUTF16(sample, unicode.BigEndian)
		leText, leOK := decodeAndValidateUTF16(sample, unicode.LittleEndian)
		beQuality, leQuality := -1.0, -1.0
		if beOK {
			beQuality = textQuality(beText)
		}
		if leOK {
			leQuality = textQuality(leText)
		}
		best := beQuality
		if leQuality > best {
			best = leQuality
		}
		if best < 0.5 {
			return Result{}, false
		}
		if beQuality >= leQuality {
			return Result{Encoding: "utf-16-be", Confidence: patternConfidence}, true
		}
		return Result{Encoding: "utf-16-le", Confidence: patternConfidence}, true
	default:
		return Result{}, false
	}
}

func decodeAndValidateUTF16(data []byte, endian unicode.Endianness) (string, bool) {
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}
