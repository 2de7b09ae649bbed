// Package engine orchestrates applying smoothing kernels to series.
//
// The engine validates input, delegates to the kernel, and optionally
// memoizes results in a bounded cache keyed by the input series fingerprint
// and the kernel configuration. Kernels are pure, so a cached result is
// indistinguishable from a recomputed one.
package engine

import (
	"fmt"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/internal/options"
	"github.com/arloliu/tsmooth/kernel"
	"github.com/arloliu/tsmooth/series"
)

// DefaultCacheCapacity is the default maximum number of cached results.
const DefaultCacheCapacity = 128

// Engine applies smoothing kernels to series.
//
// A zero-configured engine (no options) performs no caching and is safe for
// concurrent use. With caching enabled the cache is mutex-guarded, so
// concurrent Run calls remain safe.
type Engine struct {
	cache *resultCache
}

// Option is a functional option for configuring an Engine.
type Option = options.Option[*engineConfig]

type engineConfig struct {
	cacheEnabled  bool
	cacheCapacity int
}

// WithCache enables or disables result memoization.
//
// Memoization keys on (series fingerprint, kernel type, kernel parameters),
// per the explicit-cache model: no kernel or series carries hidden state, the
// cache is the only place results are retained.
func WithCache(enabled bool) Option {
	return options.NoError(func(cfg *engineConfig) {
		cfg.cacheEnabled = enabled
	})
}

// WithCacheCapacity sets the maximum number of cached results. Implies
// nothing about enablement; combine with WithCache(true).
//
// Returns an error at New time if n <= 0.
func WithCacheCapacity(n int) Option {
	return options.New(func(cfg *engineConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: cache capacity must be positive, got %d", errs.ErrInvalidConfig, n)
		}
		cfg.cacheCapacity = n

		return nil
	})
}

// New creates an Engine with the given options.
//
// Example:
//
//	eng, err := engine.New(engine.WithCache(true), engine.WithCacheCapacity(256))
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		cacheCapacity: DefaultCacheCapacity,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	eng := &Engine{}
	if cfg.cacheEnabled {
		eng.cache = newResultCache(cfg.cacheCapacity)
	}

	return eng, nil
}

// Run applies k to src and returns a new smoothed series.
//
// The input series is read-only to the engine and the kernel. The returned
// series is always owned by the caller: cache hits return a copy of the
// cached entry, so appending to a result never affects later runs.
//
// Returns errs.ErrEmptySeries for a nil or empty input, and the kernel's own
// validation errors otherwise. On error no output is produced.
func (e *Engine) Run(src *series.Series, k kernel.Kernel) (*series.Series, error) {
	if src.Len() == 0 {
		return nil, errs.ErrEmptySeries
	}

	if e.cache == nil {
		return k.Apply(src)
	}

	key := cacheKey(src, k)
	if cached, ok := e.cache.get(key); ok {
		return cached, nil
	}

	out, err := k.Apply(src)
	if err != nil {
		return nil, err
	}
	e.cache.put(key, out)

	return out, nil
}

// RunAll applies each kernel to src and returns one output series per kernel,
// in the same order. Fails on the first kernel error; no partial results are
// returned.
func (e *Engine) RunAll(src *series.Series, kernels ...kernel.Kernel) ([]*series.Series, error) {
	results := make([]*series.Series, len(kernels))
	for i, k := range kernels {
		out, err := e.Run(src, k)
		if err != nil {
			return nil, fmt.Errorf("kernel %s: %w", k.Type(), err)
		}
		results[i] = out
	}

	return results, nil
}

// CacheLen returns the number of cached results, or 0 when caching is
// disabled.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}

	return e.cache.len()
}
