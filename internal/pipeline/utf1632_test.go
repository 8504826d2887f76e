/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestDetectUTF1632Patterns(t *testing.T) {
	t.Run("too short is ignored", func(t *testing.T) {
		_, ok := DetectUTF1632Patterns([]byte{0x48, 0x00, 0x65, 0x00})
		if ok {
			t.Fatal("expected under-minimum-length input to be ignored")
		}
	})

	t.Run("utf-16-le null stride", func(t *testing.T) {
		// ASCII text interleaved with nulls at odd offsets (LE).
		text := "Hello world this"
		data := make([]byte, 0, len(text)*2)
		for _, c := range []byte(text) {
			data = append(data, c, 0x00)
		}
		result, ok := DetectUTF1632Patterns(data)
		if !ok {
			t.Fatal("expected utf-16-le pattern to be recognised")
		}
		if result.Encoding != "utf-16-le" {
			t.Errorf("encoding = %q, want utf-16-le", result.Encoding)
		}
	})

	t.Run("utf-16-be null stride", func(t *testing.T) {
		text := "Hello world this"
		data := make([]byte, 0, len(text)*2)
		for _, c := range []byte(text) {
			data = append(data, 0x00, c)
		}
		result, ok := DetectUTF1632Patterns(data)
		if !ok {
			t.Fatal("expected utf-16-be pattern to be recognised")
		}
		if result.Encoding != "utf-16-be" {
			t.Errorf("encoding = %q, want utf-16-be", result.Encoding)
		}
	})
}
