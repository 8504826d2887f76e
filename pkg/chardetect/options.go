/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package chardetect

import (
	"chardetect/internal/registry"
	"chardetect/pkg/logger"
)

// DefaultMaxBytes is the default cap on how much of the input buffer the
// pipeline examines.
const DefaultMaxBytes = 200_000

// legacyChunkSize is the only chunk_size value that doesn't trigger the
// deprecation warning (the parameter is otherwise unused; Go's Detect never
// chunks internally).
const legacyChunkSize = 65_536

// LanguageFilter restricts candidates by script family. Accepted for API
// compatibility with the original; a minimal port is not required to let it
// alter results (see spec.md glossary).
type LanguageFilter uint16

// AllLanguages is the permissive default language filter.
const AllLanguages LanguageFilter = 0xFFFF

type config struct {
	shouldRenameLegacy *bool
	encodingEra        registry.Era
	maxBytes           int
	ignoreThreshold    bool
	langFilter         LanguageFilter
	chunkSize          int
}

func defaultConfig() *config {
	return &config{
		encodingEra: registry.ModernWeb,
		maxBytes:    DefaultMaxBytes,
		langFilter:  AllLanguages,
		chunkSize:   legacyChunkSize,
	}
}

// Option configures a single Detect/DetectAll/NewUniversalDetector call.
type Option func(*config) error

// WithShouldRenameLegacy forces the legacy-rename behavior on or off. When
// no option of this kind is given, renaming defaults to true iff the
// configured era is exactly MODERN_WEB.
func WithShouldRenameLegacy(enabled bool) Option {
	return func(c *config) error {
		c.shouldRenameLegacy = &enabled
		return nil
	}
}

// WithEncodingEra restricts candidate selection to the given era mask
// (combine era bits with bitwise OR, or pass registry.AllEras).
func WithEncodingEra(era registry.Era) Option {
	return func(c *config) error {
		c.encodingEra = era
		return nil
	}
}

// WithMaxBytes caps how much of the input buffer the pipeline examines.
// Must be positive; otherwise the call fails at entry with a ConfigError.
func WithMaxBytes(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return &ConfigError{Msg: "max_bytes must be a positive integer"}
		}
		c.maxBytes = n
		return nil
	}
}

// WithIgnoreThreshold is consulted only by DetectAll: when true, results
// below MinimumThreshold are kept instead of filtered out.
func WithIgnoreThreshold(ignore bool) Option {
	return func(c *config) error {
		c.ignoreThreshold = ignore
		return nil
	}
}

// WithLanguageFilter is accepted for API compatibility; see LanguageFilter.
func WithLanguageFilter(f LanguageFilter) Option {
	return func(c *config) error {
		c.langFilter = f
		return nil
	}
}

// WithChunkSize is accepted but ignored; any value other than the
// historical default emits a deprecation warning through the package
// logger and otherwise has no effect.
func WithChunkSize(n int) Option {
	return func(c *config) error {
		c.chunkSize = n
		if n != legacyChunkSize {
			logger.Warn("chunk_size is deprecated and ignored", "chunk_size", n)
		}
		return nil
	}
}

func resolveConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func resolveShouldRename(cfg *config) bool {
	if cfg.shouldRenameLegacy != nil {
		return *cfg.shouldRenameLegacy
	}
	return cfg.encodingEra == registry.ModernWeb
}
