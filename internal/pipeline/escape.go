/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "bytes"

// escSequence is one of the fixed ISO-2022 shift sequences that
// terminally identifies an encoding.
type escSequence struct {
	bytes    []byte
	encoding string
	language string
}

var escSequences = []escSequence{
	{bytes: []byte{0x1B, '$', 'B'}, encoding: "iso-2022-jp", language: "Japanese"},
	{bytes: []byte{0x1B, '$', '@'}, encoding: "iso-2022-jp", language: "Japanese"},
	{bytes: []byte{0x1B, '(', 'J'}, encoding: "iso-2022-jp", language: "Japanese"},
	{bytes: []byte{0x1B, '$', ')', 'C'}, encoding: "iso-2022-kr", language: "Korean"},
}

// DetectEscape scans for ISO-2022-JP/KR shift sequences, an HZ-GB-2312
// `~{...~}` region, or a UTF-7 shifted base64 run, in that order. A match
// is terminal at DeterministicConfidence.
func DetectEscape(data []byte) (Result, bool) {
	for _, seq := range escSequences {
		if bytes.Contains(data, seq.bytes) {
			return Result{Encoding: seq.encoding, Confidence: DeterministicConfidence, Language: seq.language}, true
		}
	}
	if hasValidHZRegions(data) {
		return Result{Encoding: "hz-gb-2312", Confidence: DeterministicConfidence, Language: "Chinese"}, true
	}
	if hasValidUTF7Sequence(data) {
		return Result{Encoding: "utf-7", Confidence: DeterministicConfidence}, true
	}
	return Result{}, false
}

// hasValidHZRegions looks for at least one "~{...~}" region whose interior
// is a non-empty, even-length run of bytes in 0x21..0x7E.
func hasValidHZRegions(data []byte) bool {
	i := 0
	for {
		start := bytes.Index(data[i:], []byte("~{"))
		if start == -1 {
			return false
		}
		start += i
		end := bytes.Index(data[start+2:], []byte("~}"))
		if end == -1 {
			return false
		}
		end += start + 2
		interior := data[start+2 : end]
		if len(interior) > 0 && len(interior)%2 == 0 && allInRange(interior, 0x21, 0x7E) {
			return true
		}
		i = end + 2
		if i >= len(data) {
			return false
		}
	}
}

func allInRange(data []byte, lo, hi byte) bool {
	for _, b := range data {
		if b < lo || b > hi {
			return false
		}
	}
	return true
}

var utf7Base64Alphabet = func() [256]bool {
	var m [256]bool
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for _, c := range []byte(alphabet) {
		m[c] = true
	}
	return m
}()

// hasValidUTF7Sequence looks for a "+<base64>-" shift sequence with at
// least 3 base64 characters and an explicit "-" terminator. "+-" alone is
// a literal plus sign, not a shift.
func hasValidUTF7Sequence(data []byte) bool {
	for i := 0; i < len(data); i++ {
		if data[i] != '+' {
			continue
		}
		j := i + 1
		for j < len(data) && utf7Base64Alphabet[data[j]] {
			j++
		}
		runLen := j - (i + 1)
		if runLen >= 3 && j < len(data) && data[j] == '-' {
			return true
		}
	}
	return false
}
