/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package bigrammodel

import "testing"

func TestCategoryIndexRoundTrip(t *testing.T) {
	for i, name := range categoryOrder {
		if CategoryIndex(name) != i {
			t.Errorf("CategoryIndex(%q) = %d, want %d", name, CategoryIndex(name), i)
		}
		if CategoryName(i) != name {
			t.Errorf("CategoryName(%d) = %q, want %q", i, CategoryName(i), name)
		}
	}
}

func TestCategoryIndexUnknownDefaultsToCn(t *testing.T) {
	if got := CategoryIndex("Zz"); got != CategoryIndex("Cn") {
		t.Errorf("unknown category index = %d, want Cn index %d", got, CategoryIndex("Cn"))
	}
	if got := CategoryName(999); got != "Cn" {
		t.Errorf("out-of-range CategoryName = %q, want Cn", got)
	}
	if got := CategoryName(-1); got != "Cn" {
		t.Errorf("negative CategoryName = %q, want Cn", got)
	}
}

func TestRuneCategory(t *testing.T) {
	tests := map[rune]string{
		'A': "Lu",
		'a': "Ll",
		'5': "Nd",
		' ': "Zs",
	}
	for r, want := range tests {
		if got := RuneCategory(r); got != want {
			t.Errorf("RuneCategory(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestCategoryPreferenceOrdering(t *testing.T) {
	if CategoryPreference("Lu") <= CategoryPreference("Cc") {
		t.Error("expected letters to outrank control characters")
	}
	if CategoryPreference("Cn") != 0 {
		t.Errorf("CategoryPreference(Cn) = %d, want 0", CategoryPreference("Cn"))
	}
	if CategoryPreference("not-a-category") != 0 {
		t.Error("expected an unknown category to default to weight 0")
	}
}
