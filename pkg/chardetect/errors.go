/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package chardetect is the public API of the detector: Detect, DetectAll,
// and the streaming UniversalDetector. Per spec, only programmer errors
// (bad configuration, streaming-lifecycle misuse) are ever returned as
// errors; every data-driven outcome is a well-formed DetectionResult.
package chardetect

import "fmt"

// ConfigError reports a caller mistake in the options passed to Detect,
// DetectAll, or NewUniversalDetector — e.g. a non-positive max byte count.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chardetect: configuration error: %s", e.Msg)
}

// UsageError reports misuse of the UniversalDetector streaming lifecycle,
// such as calling Feed after Close without an intervening Reset.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("chardetect: usage error: %s", e.Msg)
}
