/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package bigrammodel

import "testing"

func TestLoadConfusion(t *testing.T) {
	m := LoadConfusion()
	if m == nil {
		t.Fatal("expected a non-nil confusion map")
	}

	entry, ok := m.Lookup("windows-1252", "iso-8859-1")
	if !ok {
		t.Fatal("expected a windows-1252/iso-8859-1 confusion entry")
	}
	if len(entry.Distinguishing) == 0 {
		t.Error("expected at least one distinguishing byte")
	}

	// Lookup must work with either ordering.
	reversed, ok := m.Lookup("iso-8859-1", "windows-1252")
	if !ok {
		t.Fatal("expected lookup to succeed in reversed order")
	}
	if len(reversed.Distinguishing) != len(entry.Distinguishing) {
		t.Error("expected both orderings to return the same entry")
	}
}

func TestLoadConfusionUnknownPair(t *testing.T) {
	m := LoadConfusion()
	if _, ok := m.Lookup("utf-8", "shift_jis"); ok {
		t.Error("expected no confusion entry for an unrelated pair")
	}
}

func TestConfusionEntryDistinguishingBytes(t *testing.T) {
	entry := ConfusionEntry{
		Distinguishing: []DistinguishingByte{
			{Value: 0x80}, {Value: 0x90},
		},
	}
	set := entry.DistinguishingBytes()
	if !set[0x80] || !set[0x90] {
		t.Errorf("expected both distinguishing byte values present, got %v", set)
	}
	if set[0x00] {
		t.Error("expected an unrelated byte value to be absent")
	}
}

func TestConfusionMapLookupOnNil(t *testing.T) {
	var m *ConfusionMap
	if _, ok := m.Lookup("a", "b"); ok {
		t.Error("expected a nil map lookup to fail gracefully")
	}
}
