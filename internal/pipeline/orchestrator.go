/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package pipeline

import (
	"sort"

	"chardetect/internal/registry"
)

// RunPipeline executes the full staged cascade described by the pipeline
// table and returns every surviving result, sorted by descending
// confidence before the confusion and era rerankers, which may each swap a
// lower-confidence result into position 0. data must already be truncated
// to the caller's max_bytes.
func RunPipeline(ctx *Context, data []byte, eraMask registry.Era, shouldRename bool) []Result {
	if len(data) == 0 {
		return []Result{Negative}
	}

	if r, ok := DetectBOM(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}
	if r, ok := DetectUTF1632Patterns(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}
	if r, ok := DetectEscape(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}
	if IsBinary(data) {
		return []Result{Negative}
	}
	if r, ok := DetectMarkupCharset(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}
	if r, ok := DetectASCII(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}
	if r, ok := DetectUTF8(data); ok {
		return []Result{maybeRename(r, shouldRename)}
	}

	candidates := ctx.Registry.GetCandidates(eraMask)
	var singleByte, multiByte []registry.EncodingInfo
	for _, c := range candidates {
		if c.IsMultibyte {
			multiByte = append(multiByte, c)
		} else {
			singleByte = append(singleByte, c)
		}
	}

	// Byte-validity filter (stage 9) runs before any scoring (stages 10-11)
	// for both single- and multi-byte candidates: an encoding that can't
	// even decode the buffer never reaches structural or statistical
	// scoring, regardless of how plausible its lead/trail byte shapes look.
	singleByteSurvivors := FilterByValidity(data, singleByte)
	multiByteSurvivors := FilterByValidity(data, multiByte)

	language := make(map[string]string, len(singleByteSurvivors)+len(multiByteSurvivors))
	for _, s := range singleByteSurvivors {
		if len(s.Languages) > 0 {
			language[s.Name] = s.Languages[0]
		}
	}

	var structuralResults []Result
	bigramNames := make([]string, 0, len(singleByteSurvivors)+len(multiByteSurvivors))
	for _, s := range singleByteSurvivors {
		bigramNames = append(bigramNames, s.Name)
	}

	for _, mb := range multiByteSurvivors {
		score := ComputeStructuralScore(mb.Name, data)
		ctx.MBScores[mb.Name] = score.Score
		ctx.MBCoverage[mb.Name] = score.ByteCoverage
		if score.Score <= 0 {
			continue
		}
		if len(mb.Languages) > 0 {
			language[mb.Name] = mb.Languages[0]
		}
		if score.Score >= ShortCircuitThreshold {
			// Short-circuits single-byte scoring for ranking purposes only;
			// single-byte candidates are still scored and merged below.
			confidence := score.Score
			if confidence > 0.99 {
				confidence = 0.99
			}
			structuralResults = append(structuralResults, Result{Encoding: mb.Name, Confidence: confidence, Language: language[mb.Name]})
			continue
		}
		// Didn't clear the short-circuit threshold: still a surviving
		// candidate, so it goes through the bigram stage alongside the
		// single-byte candidates per spec.md §4.4 step 1.
		bigramNames = append(bigramNames, mb.Name)
	}

	statisticalResults := ScoreCandidates(data, bigramNames)
	for i, r := range statisticalResults {
		if lang, ok := language[r.Encoding]; ok {
			statisticalResults[i].Language = lang
		}
	}

	merged := append(structuralResults, statisticalResults...)
	if len(merged) == 0 {
		return []Result{Negative}
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Confidence > merged[j].Confidence })

	merged = ResolveConfusionGroups(data, merged)
	merged = ApplyEraTiebreak(merged)

	if shouldRename {
		for i := range merged {
			merged[i] = maybeRename(merged[i], true)
		}
	}
	return merged
}

func maybeRename(r Result, shouldRename bool) Result {
	return ApplyLegacyRename(r, shouldRename)
}
