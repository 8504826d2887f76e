/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestDetectUTF8(t *testing.T) {
	t.Run("valid multibyte sequence", func(t *testing.T) {
		result, ok := DetectUTF8([]byte{0x48, 0xC3, 0xA9, 0x6C, 0x6C, 0x6F}) // "Héllo"
		if !ok {
			t.Fatal("expected UTF-8 match")
		}
		if result.Encoding != "utf-8" {
			t.Errorf("encoding = %q, want utf-8", result.Encoding)
		}
		if result.Confidence < 0.9 {
			t.Errorf("confidence = %v, want >= 0.9", result.Confidence)
		}
	})

	t.Run("pure ascii yields no result", func(t *testing.T) {
		_, ok := DetectUTF8([]byte("hello world"))
		if ok {
			t.Fatal("expected pure ASCII to defer to the ASCII stage")
		}
	})

	t.Run("truncated final sequence tolerated", func(t *testing.T) {
		// A 3-byte lead with only one continuation byte at EOF.
		_, ok := DetectUTF8([]byte{0x41, 0xE4, 0xB8})
		if !ok {
			t.Fatal("expected truncated trailing sequence to be tolerated")
		}
	})

	t.Run("overlong encoding rejected", func(t *testing.T) {
		_, ok := DetectUTF8([]byte{0xE0, 0x80, 0x80})
		if ok {
			t.Fatal("expected overlong 3-byte sequence to be rejected")
		}
	})

	t.Run("surrogate rejected", func(t *testing.T) {
		_, ok := DetectUTF8([]byte{0xED, 0xA0, 0x80})
		if ok {
			t.Fatal("expected UTF-16 surrogate range to be rejected")
		}
	})

	t.Run("above U+10FFFF rejected", func(t *testing.T) {
		_, ok := DetectUTF8([]byte{0xF4, 0x90, 0x80, 0x80})
		if ok {
			t.Fatal("expected codepoint above U+10FFFF to be rejected")
		}
	})

	t.Run("invalid continuation byte rejected", func(t *testing.T) {
		_, ok := DetectUTF8([]byte{0xC2, 0x20})
		if ok {
			t.Fatal("expected invalid continuation byte to be rejected")
		}
	})
}
