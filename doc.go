// Package pathdml converts SVG path data into PowerPoint DrawingML geometry.
//
// # Overview
//
// pathdml parses the SVG path mini-language (M, L, H, V, C, S, Q, T, A, Z and
// their relative forms), approximates elliptical arcs with cubic Bezier
// curves, maps source coordinates into DrawingML's bounds-relative 0-100000
// space, and emits <a:custGeom> shape markup. Repeated conversions are cheap:
// results are memoized in an LRU cache and intermediate numeric buffers come
// from a reusable pool.
//
// # Quick Start
//
//	import "github.com/svgeom/pathdml"
//
//	eng, err := pathdml.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := eng.Process(`M 0 0 L 100 0 L 100 100 Z`, pathdml.ProcessParams{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.XML)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Path, Command, Matrix, Point, Generator
//   - Geometry: curve evaluation and subdivision, arc conversion,
//     optimization passes, intersection, shape fitting
//   - cache/: LRU result cache with memory accounting, numeric buffer pool
//
// # Coordinate System
//
// Source coordinates follow SVG conventions: origin at top-left, X increases
// right, Y increases down. Target coordinates are DrawingML path-space units
// normalized to the path bounds (0-100000), with shape extents expressed in
// EMUs (914400 per inch).
//
// # Concurrency
//
// An Engine and its injected cache and pool are not safe for concurrent use.
// Use one Engine per worker, or synchronize externally. Parsed paths and
// processing results are immutable once returned and may be shared freely.
package pathdml
