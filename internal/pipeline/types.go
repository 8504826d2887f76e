/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package pipeline implements the staged detection cascade: deterministic
// terminal recognisers, candidate filters, structural and statistical
// rankers, and the post-scoring rerankers. Every stage is a pure function
// of the input buffer and a per-call PipelineContext; no stage touches
// package-level mutable state.
package pipeline

import "chardetect/internal/registry"

// DeterministicConfidence is the confidence assigned by the escape and
// markup recognisers. BOM and ASCII matches use 1.0; the UTF-16/32 pattern
// stage uses its own constant of the same value.
const DeterministicConfidence = 0.95

// BOMConfidence is the confidence assigned to a byte-order-mark match.
const BOMConfidence = 1.0

// MinimumThreshold is the confidence floor applied by DetectAll.
const MinimumThreshold = 0.20

// Result is an immutable detection outcome.
type Result struct {
	Encoding   string
	Confidence float64
	Language   string
}

// Negative is the well-formed failure result: no candidate survived.
var Negative = Result{Encoding: "", Confidence: 0.0, Language: ""}

// IsNegative reports whether r represents "no encoding detected".
func (r Result) IsNegative() bool {
	return r.Encoding == ""
}

// analysisKey caches a scoring result for a given (length, sampled byte,
// encoding) tuple within a single detection call.
type analysisKey struct {
	length   int
	sample   byte
	encoding string
}

type analysisEntry struct {
	score    float64
	hits     int
	misses   int
}

// Context is the per-invocation mutable scratchpad threaded through every
// pipeline stage. A fresh Context must be created for each top-level
// detect/detect_all call and discarded on return; nothing here may be
// shared across concurrent calls.
type Context struct {
	Registry *registry.Registry

	nonASCIICount int // -1 until computed
	cache         map[analysisKey]analysisEntry

	// MBScores/MBCoverage record the multi-byte structural probe results of
	// this call. The statistical stage does not read them.
	MBScores   map[string]float64
	MBCoverage map[string]float64
}

// NewContext allocates a fresh scratchpad bound to the process-wide
// registry.
func NewContext() *Context {
	return &Context{
		Registry:      registry.Get(),
		nonASCIICount: -1,
		cache:         make(map[analysisKey]analysisEntry),
		MBScores:      make(map[string]float64),
		MBCoverage:    make(map[string]float64),
	}
}

// NonASCIICount returns the number of bytes > 0x7F in data, computing and
// caching it on first use.
func (c *Context) NonASCIICount(data []byte) int {
	if c.nonASCIICount >= 0 {
		return c.nonASCIICount
	}
	n := 0
	for _, b := range data {
		if b > 0x7F {
			n++
		}
	}
	c.nonASCIICount = n
	return n
}
