/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardetect

import "chardetect/internal/pipeline"

// minIncrementalCheck is the minimum buffer growth, in bytes, between
// early-exit re-checks during streaming Feed calls.
const minIncrementalCheck = 64

// UniversalDetector is a stateful streaming wrapper around the pipeline,
// reusable after Reset. It is NOT safe for concurrent use: callers must not share one
// instance across goroutines.
type UniversalDetector struct {
	cfg *config

	buf           []byte
	lastCheckedAt int
	sawNonASCII   bool

	closed bool
	done   bool
	result DetectionResult
}

// NewUniversalDetector constructs a streaming detector. Configuration
// errors in opts are returned immediately rather than deferred to the
// first Feed call.
func NewUniversalDetector(opts ...Option) (*UniversalDetector, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return &UniversalDetector{cfg: cfg}, nil
}

// Done reports whether a terminal result has been reached, either via an
// early-exit stage during Feed or via Close.
func (d *UniversalDetector) Done() bool { return d.done }

// Result returns the most recently computed result. Stable after Close
// until the next Reset.
func (d *UniversalDetector) Result() DetectionResult { return d.result }

// Feed appends data to the internal buffer, capped at the configured
// max_bytes, and opportunistically re-runs the deterministic early-exit
// stages once the buffer has grown by at least minIncrementalCheck bytes.
// Calling Feed after Close without an intervening Reset is a usage error.
func (d *UniversalDetector) Feed(data []byte) error {
	if d.closed {
		return &UsageError{Msg: "feed() called after close() without reset()"}
	}
	if d.done {
		return nil
	}

	room := d.cfg.maxBytes - len(d.buf)
	if room <= 0 {
		d.done = true
		return nil
	}
	if len(data) > room {
		data = data[:room]
	}
	d.buf = append(d.buf, data...)
	for _, b := range data {
		if b > 0x7F {
			d.sawNonASCII = true
			break
		}
	}

	if len(d.buf)-d.lastCheckedAt < minIncrementalCheck {
		return nil
	}
	d.lastCheckedAt = len(d.buf)

	if r, ok := pipeline.DetectBOM(d.buf); ok {
		d.finish(r)
		return nil
	}
	if r, ok := pipeline.DetectEscape(d.buf); ok {
		d.finish(r)
		return nil
	}
	if !d.sawNonASCII {
		if r, ok := pipeline.DetectASCII(d.buf); ok {
			d.finish(r)
		}
		return nil
	}
	if r, ok := pipeline.DetectUTF8(d.buf); ok {
		d.finish(r)
	}
	return nil
}

func (d *UniversalDetector) finish(r pipeline.Result) {
	d.result = toDetectionResult(ApplyLegacyRename(r, resolveShouldRename(d.cfg)))
	d.done = true
}

// ApplyLegacyRename is exported so streaming and non-streaming call sites
// share one rename implementation.
func ApplyLegacyRename(r pipeline.Result, shouldRename bool) pipeline.Result {
	return pipeline.ApplyLegacyRename(r, shouldRename)
}

// Close runs the full pipeline over whatever has been buffered if no
// terminal result was already found, marks the detector closed and done,
// and returns the final result. Subsequent calls return the same result
// until Reset.
func (d *UniversalDetector) Close() DetectionResult {
	if !d.done {
		ctx := pipeline.NewContext()
		results := pipeline.RunPipeline(ctx, d.buf, d.cfg.encodingEra, resolveShouldRename(d.cfg))
		d.result = toDetectionResult(results[0])
		d.done = true
	}
	d.closed = true
	return d.result
}

// Reset clears all accumulated state, allowing the detector to be reused
// for a new buffer.
func (d *UniversalDetector) Reset() {
	d.buf = nil
	d.lastCheckedAt = 0
	d.sawNonASCII = false
	d.closed = false
	d.done = false
	d.result = DetectionResult{}
}
