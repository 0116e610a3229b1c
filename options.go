package pathdml

import (
	"fmt"

	"github.com/svgeom/pathdml/cache"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default engine
//	eng, err := pathdml.New()
//
//	// Engine with a shared per-worker cache (dependency injection)
//	c := cache.New[string, *pathdml.Result](256, 8<<20)
//	eng, err := pathdml.New(pathdml.WithCache(c))
type Option func(*engineOptions) error

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	cache       *cache.Cache[string, *Result]
	pool        *cache.BufferPool
	precision   int
	subdivision int
	decimals    int
	viewport    *Viewport
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		precision:   DefaultPrecision,
		subdivision: DefaultSamples,
		decimals:    0, // integer target coordinates
	}
}

// WithCache injects a result cache. The engine does not synchronize access;
// share a cache only between engines living on the same goroutine.
func WithCache(c *cache.Cache[string, *Result]) Option {
	return func(o *engineOptions) error {
		o.cache = c
		return nil
	}
}

// WithPool injects a scratch buffer pool used during curve sampling.
// Like the cache, the pool must not be shared across goroutines.
func WithPool(p *cache.BufferPool) Option {
	return func(o *engineOptions) error {
		o.pool = p
		return nil
	}
}

// WithPrecision sets the significant-digit precision used when the engine
// re-emits SVG path text. Valid range is 0 to 10; 0 selects the default.
func WithPrecision(digits int) Option {
	return func(o *engineOptions) error {
		if digits < 0 || digits > 10 {
			return fmt.Errorf("%w: precision %d out of range [0,10]", ErrInvalidArgument, digits)
		}
		if digits == 0 {
			digits = DefaultPrecision
		}
		o.precision = digits
		return nil
	}
}

// WithSubdivision sets the number of samples per curve used by the
// flattening passes (intersection, shape fitting). Must be at least 2.
func WithSubdivision(samples int) Option {
	return func(o *engineOptions) error {
		if samples < 2 {
			return fmt.Errorf("%w: subdivision %d, need at least 2 samples", ErrInvalidArgument, samples)
		}
		o.subdivision = samples
		return nil
	}
}

// WithDecimalCoords makes the generator emit target coordinates with a
// fixed number of decimals instead of rounded integers. Valid range is
// 1 to 10.
func WithDecimalCoords(decimals int) Option {
	return func(o *engineOptions) error {
		if decimals < 1 || decimals > 10 {
			return fmt.Errorf("%w: decimals %d out of range [1,10]", ErrInvalidArgument, decimals)
		}
		o.decimals = decimals
		return nil
	}
}

// WithViewport sets the default viewport applied when ProcessParams does
// not carry one. Validation happens in New via CoordinateSystem.Configure.
func WithViewport(v Viewport) Option {
	return func(o *engineOptions) error {
		vp := v
		o.viewport = &vp
		return nil
	}
}
