/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantEnc  string
		wantOK   bool
	}{
		{"utf-8-sig", []byte{0xEF, 0xBB, 0xBF, 0x48, 0x65, 0x6C, 0x6C, 0x6F}, "utf-8-sig", true},
		{"utf-32-le aligned", []byte{0xFF, 0xFE, 0x00, 0x00, 0x48, 0x00, 0x00, 0x00}, "utf-32-le", true},
		{"utf-32-le misaligned falls through to utf-16-le", []byte{0xFF, 0xFE, 0x00, 0x00, 0x30, 0x00}, "utf-16-le", true},
		{"utf-32-be", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x48}, "utf-32-be", true},
		{"utf-16-be", []byte{0xFE, 0xFF, 0x00, 0x48}, "utf-16-be", true},
		{"no bom", []byte("hello world"), "", false},
		{"empty", []byte{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := DetectBOM(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("DetectBOM(%v) ok = %v, want %v", tt.data, ok, tt.wantOK)
			}
			if ok && result.Encoding != tt.wantEnc {
				t.Errorf("DetectBOM(%v) encoding = %q, want %q", tt.data, result.Encoding, tt.wantEnc)
			}
			if ok && result.Confidence != BOMConfidence {
				t.Errorf("DetectBOM(%v) confidence = %v, want %v", tt.data, result.Confidence, BOMConfidence)
			}
		})
	}
}
