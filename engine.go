package pathdml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/svgeom/pathdml/cache"
)

// Viewport describes the target drawing surface: its dimensions in SVG
// user units, an optional viewBox remapping, and the resolution used for
// EMU conversion (0 selects DefaultDPI).
type Viewport struct {
	Width, Height float64
	ViewBox       *ViewBox
	DPI           float64
}

// ProcessParams carries the per-call inputs of Engine.Process beyond the
// path data itself. The zero value processes with an identity transform
// and the engine's default viewport.
type ProcessParams struct {
	// Transform, when set, is applied to the path after viewport mapping.
	Transform *Matrix

	// Viewport overrides the engine's default viewport for this call.
	Viewport *Viewport

	// Attrs are extra attributes emitted on the shape element, such as
	// fill or stroke presets. Keys are written in sorted order.
	Attrs map[string]string
}

// Result is the outcome of processing one path: the normalized geometry,
// its source-space bounds, and the generated shape XML.
type Result struct {
	// Path is the parsed, normalized, and transformed geometry.
	Path *Path

	// Bounds is the bounding box of Path in source space.
	Bounds Bounds

	// XML is the generated DrawingML shape element.
	XML string

	// Commands and Coords count the parsed input.
	Commands int
	Coords   int

	// Duration is the processing time, zero for cache hits.
	Duration time.Duration

	// CacheHit reports whether the result came from the cache.
	CacheHit bool
}

// EstimatedSize reports the approximate memory footprint of the result,
// used by the cache's byte accounting.
func (r *Result) EstimatedSize() int {
	size := 96 // struct overhead
	size += len(r.XML)
	if r.Path != nil {
		size += r.Path.EstimatedSize()
	}
	return size
}

// Outcome pairs one ProcessAll result with its error. Exactly one of
// Result and Err is set.
type Outcome struct {
	Result *Result
	Err    error
}

// Engine converts SVG path data into DrawingML shape geometry. It wires
// together the parser, coordinate system, optimizer, and generator, with
// optional result caching and buffer reuse.
//
// An Engine is not safe for concurrent use. Create one engine per worker
// goroutine; engines are cheap and independent.
type Engine struct {
	cache     *cache.Cache[string, *Result]
	pool      *cache.BufferPool
	cs        CoordinateSystem
	gen       Generator
	flat      Flattener
	opt       Optimizer
	precision int
	viewport  *Viewport
}

// New creates an Engine with the given options. Fails with
// ErrInvalidArgument when an option value is out of range, or
// ErrConfiguration when the default viewport is invalid.
func New(opts ...Option) (*Engine, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		cache:     o.cache,
		pool:      o.pool,
		gen:       Generator{Decimals: o.decimals},
		flat:      Flattener{Samples: o.subdivision, Pool: o.pool},
		opt:       Optimizer{Tolerance: DefaultTolerance, AngleTolerance: DefaultAngleTolerance},
		precision: o.precision,
		viewport:  o.viewport,
	}
	if o.viewport != nil {
		if err := e.cs.Configure(o.viewport.Width, o.viewport.Height, o.viewport.ViewBox, o.viewport.DPI); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Process parses, normalizes, transforms, and renders one SVG path into a
// DrawingML shape. Identical calls are served from the cache when one is
// configured.
func (e *Engine) Process(pathData string, params ProcessParams) (*Result, error) {
	key := e.cacheKey(pathData, params)
	if e.cache != nil {
		if r, ok := e.cache.Get(key); ok {
			hit := *r
			hit.CacheHit = true
			hit.Duration = 0
			return &hit, nil
		}
	}

	start := time.Now()

	parsed, err := Parse(pathData)
	if err != nil {
		return nil, err
	}
	commands, coords := parsed.CommandCount(), parsed.CoordCount()

	cs, err := e.callSystem(params.Viewport)
	if err != nil {
		return nil, err
	}

	m := cs.ViewportMatrix()
	if params.Transform != nil {
		m = params.Transform.Multiply(m)
	}

	p := parsed
	if m.IsIdentity() {
		if p, err = p.Normalized(); err != nil {
			return nil, err
		}
	} else {
		if p, err = p.Transform(m); err != nil {
			return nil, err
		}
	}
	if p, err = e.opt.Optimize(p); err != nil {
		return nil, err
	}

	b := BoundsOf(p)
	xml, err := e.gen.Shape(p, b, cs, params.Attrs)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Path:     p,
		Bounds:   b,
		XML:      xml,
		Commands: commands,
		Coords:   coords,
		Duration: time.Since(start),
	}
	if e.cache != nil {
		e.cache.Put(key, r)
	}
	return r, nil
}

// ProcessAll processes a batch of paths, returning one outcome per input
// in order. A failing path never aborts the batch; its outcome carries a
// BatchError wrapping the cause with the input position.
func (e *Engine) ProcessAll(pathData []string, params ProcessParams) []Outcome {
	out := make([]Outcome, len(pathData))
	for i, d := range pathData {
		r, err := e.Process(d, params)
		if err != nil {
			out[i] = Outcome{Err: &BatchError{Input: i, Err: err}}
			continue
		}
		out[i] = Outcome{Result: r}
	}
	return out
}

// Intersections flattens two parsed paths and returns the intersection
// points of their polylines.
func (e *Engine) Intersections(a, b *Path) ([]Point, error) {
	return e.flat.PathIntersections(a, b)
}

// FitShape fits a primitive of the given kind to a parsed path.
func (e *Engine) FitShape(p *Path, kind ShapeKind) (ShapeFit, error) {
	return e.flat.FitShape(p, kind)
}

// SVG re-emits a parsed path as SVG path text at the engine's precision.
func (e *Engine) SVG(p *Path) string {
	return p.SVGPrecision(e.precision)
}

// CacheStats returns cache statistics, or the zero value when no cache is
// configured.
func (e *Engine) CacheStats() cache.Stats {
	if e.cache == nil {
		return cache.Stats{}
	}
	return e.cache.Stats()
}

// PoolStats returns buffer pool statistics, or the zero value when no
// pool is configured.
func (e *Engine) PoolStats() cache.PoolStats {
	if e.pool == nil {
		return cache.PoolStats{}
	}
	return e.pool.Stats()
}

// GeneratorStats returns cumulative generator statistics.
func (e *Engine) GeneratorStats() GeneratorStats {
	return e.gen.Stats()
}

// callSystem resolves the coordinate system for one call: a per-call
// viewport gets its own configured system, otherwise the engine default
// applies.
func (e *Engine) callSystem(v *Viewport) (*CoordinateSystem, error) {
	if v == nil {
		return &e.cs, nil
	}
	var cs CoordinateSystem
	if err := cs.Configure(v.Width, v.Height, v.ViewBox, v.DPI); err != nil {
		return nil, err
	}
	return &cs, nil
}

// cacheKey fingerprints one Process call: the trimmed path data plus
// every parameter that influences the output.
func (e *Engine) cacheKey(pathData string, params ProcessParams) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(pathData))
	sb.WriteByte('\x00')

	if params.Transform != nil {
		m := params.Transform
		fmt.Fprintf(&sb, "t%g,%g,%g,%g,%g,%g", m.A, m.B, m.C, m.D, m.E, m.F)
	}
	sb.WriteByte('\x00')

	v := params.Viewport
	if v == nil {
		v = e.viewport
	}
	if v != nil {
		fmt.Fprintf(&sb, "v%g,%g,%g", v.Width, v.Height, v.DPI)
		if v.ViewBox != nil {
			fmt.Fprintf(&sb, "b%g,%g,%g,%g", v.ViewBox.MinX, v.ViewBox.MinY, v.ViewBox.Width, v.ViewBox.Height)
		}
	}
	sb.WriteByte('\x00')

	sb.WriteString(strconv.Itoa(e.gen.Decimals))
	sb.WriteByte('\x00')

	if len(params.Attrs) > 0 {
		keys := make([]string, 0, len(params.Attrs))
		for k := range params.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(params.Attrs[k])
			sb.WriteByte(';')
		}
	}
	return sb.String()
}
