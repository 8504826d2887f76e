/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package registry

import "testing"

func TestGetIsSingleton(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Fatal("expected Get() to return the same process-wide instance")
	}
	if len(a.Entries()) == 0 {
		t.Fatal("expected a non-empty registry")
	}
}

func TestLookup(t *testing.T) {
	r := Get()

	if _, ok := r.Lookup("not-a-real-encoding"); ok {
		t.Error("expected lookup of an unknown name to fail")
	}

	info, ok := r.Lookup("windows-1252")
	if !ok {
		t.Fatal("expected windows-1252 to be registered")
	}
	if info.Decoder == nil {
		t.Error("expected windows-1252 to carry a decoder")
	}

	// Alias and case/punctuation insensitivity.
	byAlias, ok := r.Lookup("CP1252")
	if !ok {
		t.Fatal("expected the cp1252 alias to resolve")
	}
	if byAlias.Name != info.Name {
		t.Errorf("alias resolved to %q, want %q", byAlias.Name, info.Name)
	}
}

func TestGetCandidates(t *testing.T) {
	r := Get()

	modern := r.GetCandidates(ModernWeb)
	if len(modern) == 0 {
		t.Fatal("expected at least one modern_web candidate")
	}
	for _, e := range modern {
		if e.Era&ModernWeb == 0 {
			t.Errorf("candidate %q leaked in with era %v", e.Name, e.Era)
		}
	}

	all := r.GetCandidates(AllEras)
	if len(all) != len(r.Entries()) {
		t.Errorf("AllEras candidates = %d, want %d (every registered entry)", len(all), len(r.Entries()))
	}

	regional := r.GetCandidates(LegacyRegional)
	if len(regional) != 0 {
		t.Errorf("expected no registered LEGACY_REGIONAL encodings, got %d", len(regional))
	}
}

func TestMultibyte(t *testing.T) {
	r := Get()
	mb := r.Multibyte()
	if len(mb) == 0 {
		t.Fatal("expected at least one multi-byte entry")
	}
	for _, e := range mb {
		if !e.IsMultibyte {
			t.Errorf("non-multibyte entry %q leaked into Multibyte()", e.Name)
		}
	}
	names := make(map[string]bool, len(mb))
	for _, e := range mb {
		names[e.Name] = true
	}
	for _, want := range []string{"shift_jis", "gb18030", "big5", "euc-kr", "johab"} {
		if !names[want] {
			t.Errorf("expected %q among multi-byte entries", want)
		}
	}
}

func TestDecoderlessEntriesAreDocumented(t *testing.T) {
	r := Get()
	for _, name := range []string{"iso-2022-jp", "iso-2022-kr", "johab"} {
		info, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("expected %q to be registered", name)
		}
		if info.Decoder != nil {
			t.Errorf("%q unexpectedly has a decoder; update this test if one was wired in", name)
		}
	}
}
