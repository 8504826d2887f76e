/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package bigrammodel loads and scores the bigram frequency tables and the
// confusion-pair distinguishing-byte tables used by the statistical scoring
// and confusion-resolution stages. Both tables are shipped as embedded
// binary assets and loaded lazily, once, for the process lifetime.
package bigrammodel

import "unicode"

// categoryOrder fixes the 30-valued enum used by the confusion.bin format
// and by category-vote scoring: {Lu:0, Ll:1, ..., Cn:29}.
var categoryOrder = []string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

var categoryToInt = func() map[string]int {
	m := make(map[string]int, len(categoryOrder))
	for i, c := range categoryOrder {
		m[c] = i
	}
	return m
}()

// CategoryIndex returns the 0..29 enum value for a two-letter Unicode
// general category abbreviation, or 29 (Cn, "unassigned") if unrecognised.
func CategoryIndex(cat string) int {
	if i, ok := categoryToInt[cat]; ok {
		return i
	}
	return categoryToInt["Cn"]
}

// CategoryName reverses CategoryIndex.
func CategoryName(i int) string {
	if i < 0 || i >= len(categoryOrder) {
		return "Cn"
	}
	return categoryOrder[i]
}

var runeCategoryTables = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Lu", unicode.Lu}, {"Ll", unicode.Ll}, {"Lt", unicode.Lt}, {"Lm", unicode.Lm}, {"Lo", unicode.Lo},
	{"Mn", unicode.Mn}, {"Mc", unicode.Mc}, {"Me", unicode.Me},
	{"Nd", unicode.Nd}, {"Nl", unicode.Nl}, {"No", unicode.No},
	{"Pc", unicode.Pc}, {"Pd", unicode.Pd}, {"Ps", unicode.Ps}, {"Pe", unicode.Pe},
	{"Pi", unicode.Pi}, {"Pf", unicode.Pf}, {"Po", unicode.Po},
	{"Sm", unicode.Sm}, {"Sc", unicode.Sc}, {"Sk", unicode.Sk}, {"So", unicode.So},
	{"Zs", unicode.Zs}, {"Zl", unicode.Zl}, {"Zp", unicode.Zp},
	{"Cc", unicode.Cc}, {"Cf", unicode.Cf}, {"Cs", unicode.Cs}, {"Co", unicode.Co},
}

// RuneCategory returns the general category abbreviation for r, defaulting
// to "Cn" (unassigned) when none of the known tables match.
func RuneCategory(r rune) string {
	for _, t := range runeCategoryTables {
		if unicode.Is(t.table, r) {
			return t.name
		}
	}
	return "Cn"
}

// categoryPreference ranks how "distinguishing" a category is when two
// encodings disagree on what a byte decodes to: letters rank highest,
// controls and unassigned lowest.
var categoryPreference = map[string]int{
	"Lu": 10, "Ll": 10, "Lt": 10,
	"Lm": 9, "Lo": 9,
	"Nd": 8,
	"Nl": 7, "No": 7,
	"Pc": 6, "Pd": 6, "Ps": 6, "Pe": 6, "Pi": 6, "Pf": 6, "Po": 6,
	"Sc": 5, "Sm": 5,
	"Mn": 5, "Mc": 5, "Me": 5,
	"Sk": 4, "So": 4,
	"Zs": 3, "Zl": 3, "Zp": 3,
	"Cf": 2,
	"Cc": 1, "Co": 1,
	"Cs": 0, "Cn": 0,
}

// CategoryPreference returns the vote weight for a category abbreviation.
func CategoryPreference(cat string) int {
	if w, ok := categoryPreference[cat]; ok {
		return w
	}
	return 0
}
