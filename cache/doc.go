// Package cache provides the memoization layer of the path engine: a
// strict-LRU cache bounded by entry count and estimated memory footprint,
// and a pool of reusable numeric buffers.
//
// Neither container is internally synchronized. The engine is
// single-threaded by design; concurrent callers must use one cache and pool
// per worker or synchronize externally. Concurrent mutation of a shared
// instance is a data race, not a supported pattern.
package cache
