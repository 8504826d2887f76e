/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package registry

import "testing"

func TestNormalizeEncodingName(t *testing.T) {
	tests := map[string]string{
		"Shift_JIS":    "shift-jis",
		"shift-jis":    "shift-jis",
		"SHIFT JIS":    "shift-jis",
		"  UTF-8  ":    "utf-8",
		"utf__8":       "utf-8",
		"iso--8859--1": "iso-8859-1",
	}
	for in, want := range tests {
		if got := NormalizeEncodingName(in); got != want {
			t.Errorf("NormalizeEncodingName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestApplyLegacyRename(t *testing.T) {
	if got := ApplyLegacyRename("iso-8859-1"); got != "windows-1252" {
		t.Errorf("ApplyLegacyRename(iso-8859-1) = %q, want windows-1252", got)
	}
	if got := ApplyLegacyRename("utf-8"); got != "utf-8" {
		t.Errorf("ApplyLegacyRename(utf-8) = %q, want utf-8 unchanged", got)
	}
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		expected, detected string
		want               bool
	}{
		{"utf-8", "utf-8", true},
		{"utf-16", "utf-16-le", true},
		{"utf-16-le", "utf-16-be", true},
		{"iso-8859-1", "windows-1252", true},
		{"ascii", "utf-8", true},
		{"shift_jis", "cp932", true},
		{"windows-1252", "iso-8859-1", false}, // superset relation is directional
		{"shift_jis", "euc-jp", false},
	}
	for _, tt := range tests {
		if got := IsCorrect(tt.expected, tt.detected); got != tt.want {
			t.Errorf("IsCorrect(%q, %q) = %v, want %v", tt.expected, tt.detected, got, tt.want)
		}
	}
}

func TestIsEquivalentDetection(t *testing.T) {
	// "caf" + precomposed e-acute (U+00E9) vs. "caf" + plain e (U+0065) +
	// combining acute accent (U+0301) -- same grapheme, different runes.
	precomposed := "café"
	decomposed := "café"

	if !IsEquivalentDetection(precomposed, precomposed) {
		t.Error("expected identical strings to be equivalent")
	}
	if !IsEquivalentDetection(precomposed, decomposed) {
		t.Error("expected a combining-acute form to be equivalent to its precomposed form")
	}
	if !IsEquivalentDetection("price: ¤5", "price: €5") {
		t.Error("expected the currency/euro sign substitution to be treated as equivalent")
	}
	if IsEquivalentDetection("hello", "world") {
		t.Error("expected unrelated strings to differ")
	}
	if IsEquivalentDetection("short", "longer") {
		t.Error("expected different-length strings to differ")
	}
}
