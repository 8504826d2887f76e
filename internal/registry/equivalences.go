/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package registry

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeEncodingName lowercases and strips punctuation variance so that
// "Shift_JIS", "shift-jis" and "SHIFT JIS" all compare equal.
func NormalizeEncodingName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return name
}

// supersets lists, for a directional subset encoding, every encoding whose
// byte-to-character mapping is a strict superset of it.
var supersets = map[string][]string{
	"ascii":       {"utf-8", "windows-1252"},
	"tis-620":     {"iso-8859-11", "cp874"},
	"iso-8859-11": {"cp874"},
	"gb2312":      {"gb18030"},
	"shift_jis":   {"cp932"},
	"euc-kr":      {"cp949"},
	"iso-8859-1":  {"windows-1252"},
	"iso-8859-2":  {"windows-1250"},
	"iso-8859-5":  {"windows-1251"},
	"iso-8859-6":  {"windows-1256"},
	"iso-8859-7":  {"windows-1253"},
	"iso-8859-8":  {"windows-1255"},
	"iso-8859-9":  {"windows-1254"},
	"iso-8859-13": {"windows-1257"},
}

// PreferredSuperset is the rename target applied by the legacy-rename stage.
var PreferredSuperset = map[string]string{
	"ascii":       "windows-1252",
	"iso-8859-1":  "windows-1252",
	"iso-8859-2":  "windows-1250",
	"iso-8859-5":  "windows-1251",
	"iso-8859-6":  "windows-1256",
	"iso-8859-7":  "windows-1253",
	"iso-8859-8":  "windows-1255",
	"iso-8859-9":  "windows-1254",
	"iso-8859-13": "windows-1257",
	"iso-8859-11": "cp874",
	"tis-620":     "cp874",
	"gb2312":      "gb18030",
	"shift_jis":   "cp932",
	"euc-kr":      "cp949",
}

// bidirectionalGroups are sets of encodings that share a repertoire and
// differ only by byte order; any member is considered equivalent to any
// other member for correctness checks.
var bidirectionalGroups = [][]string{
	{"utf-16", "utf-16-be", "utf-16-le"},
	{"utf-32", "utf-32-be", "utf-32-le"},
}

// ApplyLegacyRename maps name through PreferredSuperset, returning name
// unchanged if no rename applies.
func ApplyLegacyRename(name string) string {
	if renamed, ok := PreferredSuperset[name]; ok {
		return renamed
	}
	return name
}

func sameBidirectionalGroup(a, b string) bool {
	for _, group := range bidirectionalGroups {
		var hasA, hasB bool
		for _, g := range group {
			if g == a {
				hasA = true
			}
			if g == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// isSupersetOf expects sub and super already passed through
// NormalizeEncodingName; the table keys are normalised the same way before
// comparison so "shift_jis" matches "shift-jis".
func isSupersetOf(sub, super string) bool {
	for key, supers := range supersets {
		if NormalizeEncodingName(key) != sub {
			continue
		}
		for _, s := range supers {
			s = NormalizeEncodingName(s)
			if s == super {
				return true
			}
			if isSupersetOf(s, super) {
				return true
			}
		}
	}
	return false
}

// IsCorrect reports whether detected is an acceptable answer when expected
// is the ground truth: exact match, same bidirectional group, or detected is
// a (possibly transitive) superset of expected.
func IsCorrect(expected, detected string) bool {
	expected = NormalizeEncodingName(expected)
	detected = NormalizeEncodingName(detected)
	if expected == detected {
		return true
	}
	if sameBidirectionalGroup(expected, detected) {
		return true
	}
	return isSupersetOf(expected, detected)
}

// equivalentSymbols groups single runes that decode to visually/semantically
// interchangeable characters across legacy code pages (currency sign vs euro
// sign being the canonical case).
var equivalentSymbols = [][]rune{
	{'¤', '€'},
}

func stripCombining(s string) string {
	normalized := norm.NFKD.String(s)
	var b strings.Builder
	for _, r := range normalized {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func charsEquivalent(a, b rune) bool {
	if a == b {
		return true
	}
	for _, group := range equivalentSymbols {
		var hasA, hasB bool
		for _, r := range group {
			if r == a {
				hasA = true
			}
			if r == b {
				hasB = true
			}
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// IsEquivalentDetection compares two decoded strings for practical
// equivalence: exact match after stripping combining marks, rune-by-rune,
// allowing known equivalent-symbol substitutions.
func IsEquivalentDetection(want, got string) bool {
	w := []rune(stripCombining(want))
	g := []rune(stripCombining(got))
	if len(w) != len(g) {
		return false
	}
	for i := range w {
		if !charsEquivalent(w[i], g[i]) {
			return false
		}
	}
	return true
}
