/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package bigrammodel

import (
	_ "embed"
	"encoding/binary"
	"sync"
)

//go:embed data/confusion.bin
var embeddedConfusion []byte

// DistinguishingByte is a single byte that decodes to a different character
// under each encoding of a confusion pair, with the Unicode general category
// of each decoded character.
type DistinguishingByte struct {
	Value     byte
	CategoryA int
	CategoryB int
}

// ConfusionEntry describes one confusable encoding pair.
type ConfusionEntry struct {
	EncodingA, EncodingB string
	Distinguishing       []DistinguishingByte
}

// DistinguishingBytes returns the set of byte values distinguishing this
// pair, suitable for bigram-profile filtering.
func (e ConfusionEntry) DistinguishingBytes() map[byte]bool {
	set := make(map[byte]bool, len(e.Distinguishing))
	for _, d := range e.Distinguishing {
		set[d.Value] = true
	}
	return set
}

// ConfusionMap is the process-wide, read-only table of confusion pairs,
// looked up by either key ordering.
type ConfusionMap struct {
	pairs map[[2]string]ConfusionEntry
}

func pairKeyFor(a, b string) [2]string {
	return [2]string{a, b}
}

// Lookup finds the confusion entry for (a, b), trying both orderings.
func (c *ConfusionMap) Lookup(a, b string) (ConfusionEntry, bool) {
	if c == nil {
		return ConfusionEntry{}, false
	}
	if e, ok := c.pairs[pairKeyFor(a, b)]; ok {
		return e, true
	}
	if e, ok := c.pairs[pairKeyFor(b, a)]; ok {
		return e, true
	}
	return ConfusionEntry{}, false
}

var (
	confusionOnce sync.Once
	confusionData *ConfusionMap
)

// LoadConfusion parses the embedded confusion.bin asset on first use.
func LoadConfusion() *ConfusionMap {
	confusionOnce.Do(func() {
		m, err := parseConfusion(embeddedConfusion)
		if err != nil {
			m = &ConfusionMap{pairs: map[[2]string]ConfusionEntry{}}
		}
		confusionData = m
	})
	return confusionData
}

func parseConfusion(data []byte) (*ConfusionMap, error) {
	m := &ConfusionMap{pairs: map[[2]string]ConfusionEntry{}}
	if len(data) == 0 {
		return m, nil
	}
	r := &byteReader{data: data}

	numPairsBytes, err := r.take(2)
	if err != nil {
		return nil, err
	}
	numPairs := binary.BigEndian.Uint16(numPairsBytes)

	for i := uint16(0); i < numPairs; i++ {
		nameA, err := readPrefixedName(r)
		if err != nil {
			return nil, err
		}
		nameB, err := readPrefixedName(r)
		if err != nil {
			return nil, err
		}
		countBytes, err := r.take(1)
		if err != nil {
			return nil, err
		}
		count := int(countBytes[0])

		distinguishing := make([]DistinguishingByte, 0, count)
		for j := 0; j < count; j++ {
			triple, err := r.take(3)
			if err != nil {
				return nil, err
			}
			distinguishing = append(distinguishing, DistinguishingByte{
				Value:     triple[0],
				CategoryA: int(triple[1]),
				CategoryB: int(triple[2]),
			})
		}

		entry := ConfusionEntry{EncodingA: nameA, EncodingB: nameB, Distinguishing: distinguishing}
		m.pairs[pairKeyFor(nameA, nameB)] = entry
	}
	return m, nil
}

func readPrefixedName(r *byteReader) (string, error) {
	lenByte, err := r.take(1)
	if err != nil {
		return "", err
	}
	nameBytes, err := r.take(int(lenByte[0]))
	if err != nil {
		return "", err
	}
	return string(nameBytes), nil
}
