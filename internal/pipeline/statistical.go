/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "chardetect/internal/bigrammodel"

// ScoreCandidates runs the bigram statistical scorer over every candidate,
// normalising raw scores by the maximum raw score in the set so the result
// is a confidence in [0, 1]. Candidates with a zero raw score are dropped.
func ScoreCandidates(data []byte, names []string) []Result {
	store := bigrammodel.LoadModels()

	raw := make(map[string]float64, len(names))
	maxRaw := 0.0
	for _, name := range names {
		score := store.ScoreEncoding(data, name)
		if score <= 0 {
			continue
		}
		raw[name] = score
		if score > maxRaw {
			maxRaw = score
		}
	}
	if maxRaw <= 0 {
		return nil
	}

	// Iterate names (already in deterministic registry order) rather than
	// the raw map, so equal-confidence candidates keep a stable relative
	// order across calls.
	out := make([]Result, 0, len(raw))
	for _, name := range names {
		score, ok := raw[name]
		if !ok {
			continue
		}
		out = append(out, Result{Encoding: name, Confidence: score / maxRaw})
	}
	return out
}
