/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestComputeStructuralScore(t *testing.T) {
	t.Run("shift_jis valid pair scores 1.0", func(t *testing.T) {
		data := []byte{0x82, 0xA0, 0x82, 0xA2} // two valid lead/trail pairs
		got := ComputeStructuralScore("shift_jis", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
		if got.LeadDiversity != 1 {
			t.Errorf("lead diversity = %d, want 1", got.LeadDiversity)
		}
	})

	t.Run("shift_jis invalid trail scores 0", func(t *testing.T) {
		data := []byte{0x82, 0x20} // 0x20 is not a valid shift_jis trail
		got := ComputeStructuralScore("shift_jis", data)
		if got.Score != 0 {
			t.Errorf("score = %v, want 0", got.Score)
		}
	})

	t.Run("euc-jp two-byte kana", func(t *testing.T) {
		data := []byte{0x8E, 0xB1}
		got := ComputeStructuralScore("euc-jp", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("euc-jp three-byte sequence", func(t *testing.T) {
		data := []byte{0x8F, 0xA1, 0xA1}
		got := ComputeStructuralScore("euc-jp", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
		if got.ByteCoverage != 1.0 {
			t.Errorf("coverage = %v, want 1.0", got.ByteCoverage)
		}
	})

	t.Run("euc-kr valid pair", func(t *testing.T) {
		data := []byte{0xB0, 0xA1}
		got := ComputeStructuralScore("euc-kr", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("gb18030 strict two-byte", func(t *testing.T) {
		data := []byte{0xB0, 0xA1}
		got := ComputeStructuralScore("gb18030", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("gb18030 four-byte sequence", func(t *testing.T) {
		data := []byte{0x81, 0x30, 0x81, 0x30}
		got := ComputeStructuralScore("gb18030", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("big5 valid pair", func(t *testing.T) {
		data := []byte{0xA4, 0x40}
		got := ComputeStructuralScore("big5", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("johab valid pair", func(t *testing.T) {
		data := []byte{0x88, 0x61}
		got := ComputeStructuralScore("johab", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("escape style iso-2022-jp", func(t *testing.T) {
		data := []byte{0x1B, '$', 'B'}
		got := ComputeStructuralScore("iso-2022-jp", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("escape style hz-gb-2312", func(t *testing.T) {
		data := []byte("~{C")
		got := ComputeStructuralScore("hz-gb-2312", data)
		if got.Score != 1.0 {
			t.Errorf("score = %v, want 1.0", got.Score)
		}
	})

	t.Run("unknown encoding returns zero value", func(t *testing.T) {
		got := ComputeStructuralScore("utf-8", []byte{0x41, 0x42})
		if got.Score != 0 || got.ByteCoverage != 0 || got.LeadDiversity != 0 {
			t.Errorf("expected zero value for unregistered encoding, got %+v", got)
		}
	})
}
