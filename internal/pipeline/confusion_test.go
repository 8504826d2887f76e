/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestResolveConfusionGroups(t *testing.T) {
	t.Run("fewer than two results pass through unchanged", func(t *testing.T) {
		results := []Result{{Encoding: "utf-8", Confidence: 0.9}}
		out := ResolveConfusionGroups([]byte("hello"), results)
		if len(out) != 1 || out[0].Encoding != "utf-8" {
			t.Fatalf("expected single result untouched, got %+v", out)
		}
	})

	t.Run("unknown pair passes through unchanged", func(t *testing.T) {
		results := []Result{
			{Encoding: "utf-8", Confidence: 0.9},
			{Encoding: "shift_jis", Confidence: 0.5},
		}
		out := ResolveConfusionGroups([]byte("hello world"), results)
		if out[0].Encoding != "utf-8" || out[1].Encoding != "shift_jis" {
			t.Fatalf("expected no reordering for a non-confusion pair, got %+v", out)
		}
	})

	t.Run("empty encoding in either slot passes through unchanged", func(t *testing.T) {
		results := []Result{
			{Encoding: "", Confidence: 0},
			{Encoding: "windows-1252", Confidence: 0.3},
		}
		out := ResolveConfusionGroups([]byte("hello"), results)
		if out[0].Encoding != "" {
			t.Fatalf("expected passthrough when top encoding is empty, got %+v", out)
		}
	})

	t.Run("known confusion pair may swap, but never reorders beyond top two", func(t *testing.T) {
		results := []Result{
			{Encoding: "windows-1252", Confidence: 0.9},
			{Encoding: "iso-8859-1", Confidence: 0.85},
			{Encoding: "shift_jis", Confidence: 0.1},
		}
		data := []byte("caf\xe9 na\xefve r\xe9sum\xe9 \x80\x93\x94") // euro/curly-quote bytes differ between the two codecs
		out := ResolveConfusionGroups(data, results)
		if len(out) != 3 {
			t.Fatalf("expected length preserved, got %d", len(out))
		}
		if out[2].Encoding != "shift_jis" {
			t.Fatalf("expected the third result untouched, got %+v", out[2])
		}
		top := map[string]bool{out[0].Encoding: true, out[1].Encoding: true}
		if !top["windows-1252"] || !top["iso-8859-1"] {
			t.Fatalf("expected the confusion pair to remain the top two in some order, got %+v", out[:2])
		}
	})
}
