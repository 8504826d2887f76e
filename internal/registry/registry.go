/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package registry holds the process-wide, immutable table of supported
// encodings plus the era and equivalence tables used to filter and
// tiebreak candidates. It is built once via a one-shot initializer and is
// never mutated afterward; detection calls only read from it.
package registry

import (
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// EncodingInfo is an immutable description of one supported encoding.
type EncodingInfo struct {
	Name        string
	Aliases     []string
	Era         Era
	IsMultibyte bool
	Languages   []string
	// Decoder validates and decodes byte buffers for this encoding. nil for
	// encodings resolved upstream of the registry (escape-sequence family)
	// or for which no library-provided codec exists (see DESIGN.md).
	Decoder encoding.Encoding
}

// Registry is the immutable, ordered table of EncodingInfo values.
type Registry struct {
	entries []EncodingInfo
	byName  map[string]*EncodingInfo
}

// Entries returns the full ordered table.
func (r *Registry) Entries() []EncodingInfo {
	return r.entries
}

// Lookup finds an EncodingInfo by canonical name or alias, case-insensitive.
func (r *Registry) Lookup(name string) (EncodingInfo, bool) {
	info, ok := r.byName[NormalizeEncodingName(name)]
	if !ok {
		return EncodingInfo{}, false
	}
	return *info, true
}

// GetCandidates returns every entry whose era bit is set in eraMask.
func (r *Registry) GetCandidates(eraMask Era) []EncodingInfo {
	out := make([]EncodingInfo, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Era&eraMask != 0 {
			out = append(out, e)
		}
	}
	return out
}

// Multibyte returns every multi-byte candidate, independent of era (the
// structural probers run before era tiebreaking has any effect).
func (r *Registry) Multibyte() []EncodingInfo {
	out := make([]EncodingInfo, 0, 16)
	for _, e := range r.entries {
		if e.IsMultibyte {
			out = append(out, e)
		}
	}
	return out
}

var (
	once     sync.Once
	instance *Registry
)

// Get returns the process-wide registry, building it on first use.
func Get() *Registry {
	once.Do(func() {
		instance = build()
	})
	return instance
}

func build() *Registry {
	raw := []EncodingInfo{
		// --- MODERN_WEB: Windows code pages ---
		{Name: "windows-1250", Aliases: []string{"cp1250"}, Era: ModernWeb, Languages: []string{"pl", "cs", "hu"}, Decoder: charmap.Windows1250},
		{Name: "windows-1251", Aliases: []string{"cp1251"}, Era: ModernWeb, Languages: []string{"ru", "bg"}, Decoder: charmap.Windows1251},
		{Name: "windows-1252", Aliases: []string{"cp1252"}, Era: ModernWeb, Languages: []string{"en", "fr", "de"}, Decoder: charmap.Windows1252},
		{Name: "windows-1253", Aliases: []string{"cp1253"}, Era: ModernWeb, Languages: []string{"el"}, Decoder: charmap.Windows1253},
		{Name: "windows-1254", Aliases: []string{"cp1254"}, Era: ModernWeb, Languages: []string{"tr"}, Decoder: charmap.Windows1254},
		{Name: "windows-1255", Aliases: []string{"cp1255"}, Era: ModernWeb, Languages: []string{"he"}, Decoder: charmap.Windows1255},
		{Name: "windows-1256", Aliases: []string{"cp1256"}, Era: ModernWeb, Languages: []string{"ar"}, Decoder: charmap.Windows1256},
		{Name: "windows-1257", Aliases: []string{"cp1257"}, Era: ModernWeb, Languages: []string{"lt", "lv", "et"}, Decoder: charmap.Windows1257},
		{Name: "windows-1258", Aliases: []string{"cp1258"}, Era: ModernWeb, Languages: []string{"vi"}, Decoder: charmap.Windows1258},
		{Name: "cp874", Aliases: []string{"windows-874", "tis-620"}, Era: ModernWeb, Languages: []string{"th"}, Decoder: charmap.Windows874},
		{Name: "koi8-r", Era: ModernWeb, Languages: []string{"ru"}, Decoder: charmap.KOI8R},
		{Name: "koi8-u", Era: ModernWeb, Languages: []string{"uk"}, Decoder: charmap.KOI8U},

		// --- MODERN_WEB: CJK multi-byte ---
		{Name: "gb18030", Era: ModernWeb, IsMultibyte: true, Languages: []string{"zh"}, Decoder: simplifiedchinese.GB18030},
		{Name: "gb2312", Era: ModernWeb, IsMultibyte: true, Languages: []string{"zh"}, Decoder: simplifiedchinese.GB18030},
		{Name: "big5", Era: ModernWeb, IsMultibyte: true, Languages: []string{"zh"}, Decoder: traditionalchinese.Big5},
		{Name: "shift_jis", Aliases: []string{"sjis"}, Era: ModernWeb, IsMultibyte: true, Languages: []string{"ja"}, Decoder: japanese.ShiftJIS},
		{Name: "cp932", Era: LegacyISO, IsMultibyte: true, Languages: []string{"ja"}, Decoder: japanese.ShiftJIS},
		{Name: "euc-jp", Era: ModernWeb, IsMultibyte: true, Languages: []string{"ja"}, Decoder: japanese.EUCJP},
		{Name: "euc-kr", Era: ModernWeb, IsMultibyte: true, Languages: []string{"ko"}, Decoder: korean.EUCKR},
		{Name: "cp949", Era: ModernWeb, IsMultibyte: true, Languages: []string{"ko"}, Decoder: korean.EUCKR},
		{Name: "hz-gb-2312", Era: ModernWeb, IsMultibyte: true, Languages: []string{"zh"}, Decoder: simplifiedchinese.HZGB2312},
		// iso-2022-jp/kr resolve in the escape-sequence stage before the
		// registry is consulted; no x/text decoder backs them here.
		{Name: "iso-2022-jp", Era: ModernWeb, IsMultibyte: true, Languages: []string{"ja"}},
		{Name: "iso-2022-kr", Era: ModernWeb, IsMultibyte: true, Languages: []string{"ko"}},

		// --- LEGACY_ISO ---
		{Name: "iso-8859-1", Era: LegacyISO, Languages: []string{"en", "fr", "de"}, Decoder: charmap.ISO8859_1},
		{Name: "iso-8859-2", Era: LegacyISO, Languages: []string{"pl", "cs", "hu"}, Decoder: charmap.ISO8859_2},
		{Name: "iso-8859-3", Era: LegacyISO, Languages: []string{"mt", "eo"}, Decoder: charmap.ISO8859_3},
		{Name: "iso-8859-4", Era: LegacyISO, Languages: []string{"et", "lv", "lt"}, Decoder: charmap.ISO8859_4},
		{Name: "iso-8859-5", Era: LegacyISO, Languages: []string{"ru"}, Decoder: charmap.ISO8859_5},
		{Name: "iso-8859-6", Era: LegacyISO, Languages: []string{"ar"}, Decoder: charmap.ISO8859_6},
		{Name: "iso-8859-7", Era: LegacyISO, Languages: []string{"el"}, Decoder: charmap.ISO8859_7},
		{Name: "iso-8859-8", Era: LegacyISO, Languages: []string{"he"}, Decoder: charmap.ISO8859_8},
		{Name: "iso-8859-9", Era: LegacyISO, Languages: []string{"tr"}, Decoder: charmap.ISO8859_9},
		{Name: "iso-8859-10", Era: LegacyISO, Languages: []string{"sv", "no", "is"}, Decoder: charmap.ISO8859_10},
		{Name: "iso-8859-13", Era: LegacyISO, Languages: []string{"lt", "lv"}, Decoder: charmap.ISO8859_13},
		{Name: "iso-8859-14", Era: LegacyISO, Languages: []string{"cy", "ga"}, Decoder: charmap.ISO8859_14},
		{Name: "iso-8859-15", Era: LegacyISO, Languages: []string{"fr", "de", "fi"}, Decoder: charmap.ISO8859_15},
		{Name: "iso-8859-16", Era: LegacyISO, Languages: []string{"ro"}, Decoder: charmap.ISO8859_16},
		// johab has no x/text decoder, so it never survives the byte-validity
		// filter and the pipeline never reaches its structural scorer.
		{Name: "johab", Era: LegacyISO, IsMultibyte: true, Languages: []string{"ko"}},

		// --- DOS ---
		{Name: "cp437", Era: DOS, Languages: []string{"en"}, Decoder: charmap.CodePage437},
		{Name: "cp850", Era: DOS, Languages: []string{"en", "fr", "de"}, Decoder: charmap.CodePage850},
		{Name: "cp852", Era: DOS, Languages: []string{"pl", "cs"}, Decoder: charmap.CodePage852},
		{Name: "cp855", Era: DOS, Languages: []string{"ru"}, Decoder: charmap.CodePage855},
		{Name: "cp858", Era: DOS, Languages: []string{"en", "fr", "de"}, Decoder: charmap.CodePage858},
		{Name: "cp860", Era: DOS, Languages: []string{"pt"}, Decoder: charmap.CodePage860},
		{Name: "cp862", Era: DOS, Languages: []string{"he"}, Decoder: charmap.CodePage862},
		{Name: "cp863", Era: DOS, Languages: []string{"fr"}, Decoder: charmap.CodePage863},
		{Name: "cp865", Era: DOS, Languages: []string{"da", "no"}, Decoder: charmap.CodePage865},
		{Name: "cp866", Era: DOS, Languages: []string{"ru"}, Decoder: charmap.CodePage866},

		// --- LEGACY_MAC ---
		{Name: "mac-roman", Aliases: []string{"macintosh"}, Era: LegacyMac, Languages: []string{"en"}, Decoder: charmap.Macintosh},
		{Name: "mac-cyrillic", Era: LegacyMac, Languages: []string{"ru"}, Decoder: charmap.MacintoshCyrillic},

		// --- MAINFRAME (EBCDIC) ---
		{Name: "cp037", Era: Mainframe, Languages: []string{"en"}, Decoder: charmap.CodePage037},
		{Name: "cp1047", Era: Mainframe, Languages: []string{"en"}, Decoder: charmap.CodePage1047},
		{Name: "cp1140", Era: Mainframe, Languages: []string{"en"}, Decoder: charmap.CodePage1140},
	}

	byName := make(map[string]*EncodingInfo, len(raw)*2)
	for i := range raw {
		byName[NormalizeEncodingName(raw[i].Name)] = &raw[i]
		for _, alias := range raw[i].Aliases {
			byName[NormalizeEncodingName(alias)] = &raw[i]
		}
	}
	return &Registry{entries: raw, byName: byName}
}
