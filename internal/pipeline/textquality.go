/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "unicode"

// textQuality scores a decoded string for "does this look like real text"
// purposes, used to pick between the two UTF-16 endianness candidates.
// Returns -1.0 if the text is clearly not plausible (too much control noise
// or too many combining marks).
func textQuality(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return -1.0
	}

	var letters, asciiLetters, controls, combining int
	hasWhitespace := false

	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			letters++
			if r < 0x80 {
				asciiLetters++
			}
		case unicode.IsControl(r):
			controls++
		}
		if unicode.IsMark(r) {
			combining++
		}
		if unicode.IsSpace(r) {
			hasWhitespace = true
		}
	}

	n := float64(len(runes))
	if float64(controls)/n > 0.10 {
		return -1.0
	}
	if float64(combining)/n > 0.20 {
		return -1.0
	}

	quality := float64(letters)/n + 0.5*float64(asciiLetters)/n
	if hasWhitespace {
		quality += 0.1
	}
	// Fold in the shared mess heuristic (unprintable density, excess
	// accenting, script mixing) so a candidate that merely clears the
	// control/combining thresholds above but still decodes into visibly
	// noisy text loses out to the cleaner endianness choice.
	quality -= computeMessScore(text) * 0.5
	return quality
}

// looksLikeText is a thin readability gate used where only a pass/fail
// signal (not a score) is needed.
func looksLikeText(text string) bool {
	return textQuality(text) >= 0
}
