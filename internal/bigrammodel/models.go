/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package bigrammodel

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/models.bin
var embeddedModels []byte

// pairKey is a (byte, byte) bigram.
type pairKey [2]byte

// Model is one learned bigram frequency table for a single (language,
// encoding) pair, or a language-agnostic table for a bare encoding name.
type Model struct {
	Name     string // as stored: "ru/koi8-r" or bare "koi8-r"
	Language string // "" for bare/language-agnostic models
	Encoding string
	Weights  map[pairKey]uint8
}

func parseModelName(name string) (language, encoding string) {
	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		return name[:idx], name[idx+1:]
	}
	return "", name
}

// Store is the process-wide, read-only collection of loaded bigram models,
// indexed by bare encoding name (multiple language variants per encoding
// are common).
type Store struct {
	byEncoding map[string][]*Model
}

// ModelsFor returns every model (across all languages) registered for
// encoding, or nil if none were loaded.
func (s *Store) ModelsFor(encoding string) []*Model {
	if s == nil {
		return nil
	}
	return s.byEncoding[encoding]
}

// ScoreBigrams slides a window over data scoring each adjacent byte pair
// against m. High-byte pairs (either byte > 0x7F) are weighted 8x since
// they're more discriminative than pure-ASCII pairs. Returns the raw
// accumulated score and the theoretical maximum (255 * total weight),
// matching spec.md §4.4.
func ScoreBigrams(data []byte, m *Model) (score, wSum float64) {
	if m == nil || len(data) < 2 {
		return 0, 0
	}
	for i := 0; i+1 < len(data); i++ {
		b1, b2 := data[i], data[i+1]
		mult := 1.0
		if b1 > 0x7F || b2 > 0x7F {
			mult = 8.0
		}
		weight := float64(m.Weights[pairKey{b1, b2}])
		score += mult * weight
		wSum += 255.0 * mult
	}
	return score, wSum
}

// ScoreEncoding returns the best (max) score across every model registered
// for encoding, implementing "Encoding score = max(scores over its
// languages)".
func (s *Store) ScoreEncoding(data []byte, encoding string) float64 {
	best := 0.0
	for _, m := range s.ModelsFor(encoding) {
		score, _ := ScoreBigrams(data, m)
		if score > best {
			best = score
		}
	}
	return best
}

// FilterModel builds a focused bigram profile containing only entries
// where at least one byte is in distinguishing, used by the confusion
// resolver's bigram-rescore step.
func FilterModel(m *Model, distinguishing map[byte]bool) *Model {
	if m == nil {
		return nil
	}
	filtered := &Model{Name: m.Name, Language: m.Language, Encoding: m.Encoding, Weights: make(map[pairKey]uint8)}
	for k, w := range m.Weights {
		if distinguishing[k[0]] || distinguishing[k[1]] {
			filtered.Weights[k] = w
		}
	}
	return filtered
}

// ScoreEncodingFiltered scores encoding's models after restricting each to
// only the bigrams touching a distinguishing byte.
func (s *Store) ScoreEncodingFiltered(data []byte, encoding string, distinguishing map[byte]bool) float64 {
	best := 0.0
	for _, m := range s.ModelsFor(encoding) {
		filtered := FilterModel(m, distinguishing)
		score, _ := ScoreBigrams(data, filtered)
		if score > best {
			best = score
		}
	}
	return best
}

var (
	modelsOnce sync.Once
	modelsData *Store
)

// LoadModels parses the embedded models.bin asset on first use and caches
// the result for the process lifetime.
func LoadModels() *Store {
	modelsOnce.Do(func() {
		store, err := parseModels(embeddedModels)
		if err != nil {
			// Missing/corrupt model data degrades gracefully: the
			// statistical stage simply has nothing to score against.
			store = &Store{byEncoding: map[string][]*Model{}}
		}
		modelsData = store
	})
	return modelsData
}

func parseModels(data []byte) (*Store, error) {
	store := &Store{byEncoding: map[string][]*Model{}}
	if len(data) == 0 {
		return store, nil
	}
	r := &byteReader{data: data}

	numModels, err := r.u32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numModels; i++ {
		nameLen, err := r.u32()
		if err != nil {
			return nil, err
		}
		nameBytes, err := r.take(int(nameLen))
		if err != nil {
			return nil, err
		}
		name := string(nameBytes)

		numEntries, err := r.u32()
		if err != nil {
			return nil, err
		}
		weights := make(map[pairKey]uint8, numEntries)
		for e := uint32(0); e < numEntries; e++ {
			triple, err := r.take(3)
			if err != nil {
				return nil, err
			}
			weights[pairKey{triple[0], triple[1]}] = triple[2]
		}

		lang, enc := parseModelName(name)
		model := &Model{Name: name, Language: lang, Encoding: enc, Weights: weights}
		store.byEncoding[enc] = append(store.byEncoding[enc], model)
	}
	return store, nil
}

// byteReader is a minimal big-endian cursor over an in-memory buffer.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, fmt.Errorf("bigrammodel: unexpected end of data at offset %d, need %d", r.pos, n)
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}
