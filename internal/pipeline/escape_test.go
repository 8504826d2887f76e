/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "testing"

func TestDetectEscape(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		wantEnc  string
		wantLang string
		wantOK   bool
	}{
		{
			name:     "iso-2022-jp",
			data:     []byte{0x1B, '$', 'B', 0x24, 0x33, 0x1B, '(', 'J'},
			wantEnc:  "iso-2022-jp",
			wantLang: "Japanese",
			wantOK:   true,
		},
		{
			name:     "iso-2022-kr",
			data:     []byte{0x1B, '$', ')', 'C', 'h', 'i'},
			wantEnc:  "iso-2022-kr",
			wantLang: "Korean",
			wantOK:   true,
		},
		{
			name:     "hz-gb-2312",
			data:     []byte("~{CEDE~}"),
			wantEnc:  "hz-gb-2312",
			wantLang: "Chinese",
			wantOK:   true,
		},
		{
			name:    "utf-7 shifted sequence",
			data:    []byte("plain +AHsAewB9-more"),
			wantEnc: "utf-7",
			wantOK:  true,
		},
		{
			name:   "literal plus-minus is not a shift",
			data:   []byte("price is 5+- 3 dollars total"),
			wantOK: false,
		},
		{
			name:   "plain text no escape",
			data:   []byte("hello world"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := DetectEscape(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if result.Encoding != tt.wantEnc {
				t.Errorf("encoding = %q, want %q", result.Encoding, tt.wantEnc)
			}
			if tt.wantLang != "" && result.Language != tt.wantLang {
				t.Errorf("language = %q, want %q", result.Language, tt.wantLang)
			}
			if result.Confidence != DeterministicConfidence {
				t.Errorf("confidence = %v, want %v", result.Confidence, DeterministicConfidence)
			}
		})
	}
}

func TestHasValidHZRegions(t *testing.T) {
	if !hasValidHZRegions([]byte("~{CEDE~}")) {
		t.Error("expected even-length interior to qualify")
	}
	if hasValidHZRegions([]byte("~{C~}")) {
		t.Error("expected odd-length interior to be rejected")
	}
	if hasValidHZRegions([]byte("~{~}")) {
		t.Error("expected empty interior to be rejected")
	}
}
