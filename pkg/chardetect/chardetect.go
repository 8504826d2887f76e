/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardetect

import (
	"sort"

	"chardetect/internal/pipeline"
)

// DetectionResult is the immutable outcome of a single detection call.
type DetectionResult struct {
	Encoding   string  `json:"encoding"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// AsMap renders the result the way the CLI and any JSON-emitting caller
// expect it: encoding/language are nil-equivalent (empty string) rather
// than omitted, mirroring the original's always-three-keys mapping.
func (r DetectionResult) AsMap() map[string]any {
	var encoding, language any
	if r.Encoding != "" {
		encoding = r.Encoding
	}
	if r.Language != "" {
		language = r.Language
	}
	return map[string]any{
		"encoding":   encoding,
		"confidence": r.Confidence,
		"language":   language,
	}
}

func toDetectionResult(r pipeline.Result) DetectionResult {
	return DetectionResult{Encoding: r.Encoding, Confidence: r.Confidence, Language: r.Language}
}

func truncate(data []byte, maxBytes int) []byte {
	if len(data) > maxBytes {
		return data[:maxBytes]
	}
	return data
}

// Detect identifies the most likely encoding of data. It never returns an
// error for data-driven reasons — only for configuration mistakes in opts.
// A fully negative outcome is reported as DetectionResult{Encoding: ""}.
func Detect(data []byte, opts ...Option) (DetectionResult, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return DetectionResult{}, err
	}

	ctx := pipeline.NewContext()
	results := pipeline.RunPipeline(ctx, truncate(data, cfg.maxBytes), cfg.encodingEra, resolveShouldRename(cfg))
	return toDetectionResult(results[0]), nil
}

// DetectAll returns every surviving candidate, sorted by descending
// confidence. When ignoreThreshold is false (the default), results at or
// below MinimumThreshold are dropped — unless doing so would empty the
// list entirely, in which case the unfiltered list is returned as a
// fallback.
func DetectAll(data []byte, opts ...Option) ([]DetectionResult, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	ctx := pipeline.NewContext()
	results := pipeline.RunPipeline(ctx, truncate(data, cfg.maxBytes), cfg.encodingEra, resolveShouldRename(cfg))

	sort.SliceStable(results, func(i, j int) bool { return results[i].Confidence > results[j].Confidence })

	out := make([]DetectionResult, 0, len(results))
	if !cfg.ignoreThreshold {
		filtered := make([]pipeline.Result, 0, len(results))
		for _, r := range results {
			if r.Confidence > pipeline.MinimumThreshold {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) > 0 {
			results = filtered
		}
	}
	for _, r := range results {
		out = append(out, toDetectionResult(r))
	}
	return out, nil
}
