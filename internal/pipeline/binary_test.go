/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestIsBinary(t *testing.T) {
	t.Run("dense control bytes rejected", func(t *testing.T) {
		data := make([]byte, 200)
		for i := range data {
			data[i] = byte(i % 3) // 0x00, 0x01, 0x02 repeating
		}
		if !IsBinary(data) {
			t.Fatal("expected dense low-byte buffer to be flagged binary")
		}
	})

	t.Run("plain text not binary", func(t *testing.T) {
		if IsBinary([]byte("the quick brown fox\r\njumps over\tthe lazy dog\n")) {
			t.Fatal("expected plain text with common whitespace to pass")
		}
	})

	t.Run("empty not binary", func(t *testing.T) {
		if IsBinary(nil) {
			t.Fatal("expected empty input to pass")
		}
	})
}
