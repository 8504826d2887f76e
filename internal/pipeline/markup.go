/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import (
	"regexp"

	"golang.org/x/text/encoding/htmlindex"
)

// MarkupScanLimit bounds how much of the buffer is scanned for a charset
// declaration; declarations past this point are assumed to be data, not
// header.
const MarkupScanLimit = 4096

var (
	xmlEncodingRE     = regexp.MustCompile(`(?i)<\?xml[^>]*\bencoding\s*=\s*["']([^"']+)["']`)
	html5CharsetRE    = regexp.MustCompile(`(?i)<meta[^>]*\bcharset\s*=\s*["']?([A-Za-z0-9_.:-]+)["']?`)
	html4ContentTypeRE = regexp.MustCompile(`(?i)<meta[^>]*content\s*=\s*["'][^"']*charset=([A-Za-z0-9_.:-]+)[^"']*["']`)
)

// normalizeMarkupEncoding validates name against the canonical WHATWG/IANA
// table (mirroring Python's codecs.lookup), returning the lowercased name
// on success.
func normalizeMarkupEncoding(name string) (string, bool) {
	lower := normalizeASCIILower(name)
	if _, err := htmlindex.Get(lower); err != nil {
		return "", false
	}
	return lower, true
}

func normalizeASCIILower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// DetectMarkupCharset scans the first MarkupScanLimit bytes for an XML
// encoding pseudo-attribute or an HTML meta charset declaration, in that
// order. The extracted name must resolve against the IANA encoding table;
// an unrecognised name is ignored and scanning continues to the next
// pattern.
func DetectMarkupCharset(data []byte) (Result, bool) {
	window := data
	if len(window) > MarkupScanLimit {
		window = window[:MarkupScanLimit]
	}

	for _, re := range []*regexp.Regexp{xmlEncodingRE, html5CharsetRE, html4ContentTypeRE} {
		if m := re.FindSubmatch(window); m != nil {
			if name, ok := normalizeMarkupEncoding(string(m[1])); ok {
				return Result{Encoding: name, Confidence: DeterministicConfidence}, true
			}
		}
	}
	return Result{}, false
}
