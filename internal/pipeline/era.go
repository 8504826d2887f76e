/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import "chardetect/internal/registry"

// EraTiebreakGapRatio is the fraction of the top confidence within which a
// lower-ranked result is still eligible to win on era priority.
const EraTiebreakGapRatio = 0.90

// ApplyEraTiebreak looks at pairs of results where the lower result's
// confidence is within EraTiebreakGapRatio of the top result's, and
// prefers whichever has the lower ERA_PRIORITY value. At most one swap is
// performed; a pair where both confidences are 0 is never reordered.
func ApplyEraTiebreak(results []Result) []Result {
	if len(results) < 2 {
		return results
	}
	top := results[0]
	if top.Confidence == 0 {
		return results
	}

	for i := 1; i < len(results); i++ {
		cand := results[i]
		if cand.Confidence == 0 {
			continue
		}
		if cand.Confidence < EraTiebreakGapRatio*top.Confidence {
			continue
		}
		topEra := registry.GetEncodingEra(top.Encoding)
		candEra := registry.GetEncodingEra(cand.Encoding)
		if registry.Priority(candEra) < registry.Priority(topEra) {
			out := append([]Result(nil), results...)
			out[0], out[i] = out[i], out[0]
			return out
		}
	}
	return results
}
