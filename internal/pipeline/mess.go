/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxMessSampleChars = 10_000

var skipScripts = map[string]bool{
	"Common":    true,
	"Inherited": true,
}

// computeMessScore penalises decoded text for unprintable characters,
// excessive accenting, and script mixing. 0.0 is clean text; 1.0 is
// maximally messy. Shared by the UTF-16 text-quality check and
// available to any future post-decode quality gate.
func computeMessScore(text string) float64 {
	runes := []rune(text)
	if len(runes) > maxMessSampleChars {
		runes = runes[:maxMessSampleChars]
	}
	if len(runes) == 0 {
		return 0.0
	}

	unprintable := 0
	accented := 0
	scriptSwitches := 0
	var lastScript string

	for _, r := range runes {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			unprintable++
		}
		if isAccented(r) {
			accented++
		}
		script := scriptOf(r)
		if script != "" && !skipScripts[script] {
			if lastScript != "" && lastScript != script {
				scriptSwitches++
			}
			lastScript = script
		}
	}

	n := float64(len(runes))
	unprintableRatio := float64(unprintable) / n
	accentRatio := float64(accented) / n
	switchRatio := float64(scriptSwitches) / n

	score := unprintableRatio * 8
	if score > 0.8 {
		score = 0.8
	}
	if accentRatio > 0.40 {
		score += accentRatio * 2
	}
	score += switchRatio * 3
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func isAccented(r rune) bool {
	decomposed := norm.NFKD.String(string(r))
	for _, d := range decomposed {
		if unicode.Is(unicode.Mn, d) {
			return true
		}
	}
	return false
}

var scriptTable = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Latin", unicode.Latin},
	{"Cyrillic", unicode.Cyrillic},
	{"Greek", unicode.Greek},
	{"Han", unicode.Han},
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
	{"Hangul", unicode.Hangul},
	{"Arabic", unicode.Arabic},
	{"Hebrew", unicode.Hebrew},
	{"Thai", unicode.Thai},
	{"Common", unicode.Common},
}

func scriptOf(r rune) string {
	for _, s := range scriptTable {
		if unicode.Is(s.table, r) {
			return s.name
		}
	}
	return ""
}
