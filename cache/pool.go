package cache

// defaultPoolPerLen bounds how many idle buffers the pool keeps per length.
const defaultPoolPerLen = 8

// BufferPool recycles float64 scratch buffers, keyed by exact length.
// Buffers are zeroed both when handed out and when returned, so a caller
// never observes stale samples from a previous use.
//
// BufferPool is not safe for concurrent use; see the package documentation.
type BufferPool struct {
	free   map[int][][]float64
	perLen int

	allocs   uint64
	reuses   uint64
	discards uint64
}

// NewBufferPool creates a pool keeping at most perLen idle buffers per
// buffer length. perLen <= 0 selects the default.
func NewBufferPool(perLen int) *BufferPool {
	if perLen <= 0 {
		perLen = defaultPoolPerLen
	}
	return &BufferPool{
		free:   make(map[int][][]float64),
		perLen: perLen,
	}
}

// Get returns a zeroed buffer of length n, reusing an idle one when
// available.
func (p *BufferPool) Get(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if list := p.free[n]; len(list) > 0 {
		buf := list[len(list)-1]
		p.free[n] = list[:len(list)-1]
		p.reuses++
		clear(buf)
		return buf
	}
	p.allocs++
	return make([]float64, n)
}

// Put returns a buffer to the pool. Buffers beyond the per-length idle
// limit are discarded for the garbage collector.
func (p *BufferPool) Put(buf []float64) {
	n := len(buf)
	if n == 0 {
		return
	}
	if len(p.free[n]) >= p.perLen {
		p.discards++
		return
	}
	clear(buf)
	p.free[n] = append(p.free[n], buf)
}

// Reset drops all idle buffers.
func (p *BufferPool) Reset() {
	p.free = make(map[int][][]float64)
}

// PoolStats contains buffer pool statistics.
type PoolStats struct {
	// Allocs counts buffers newly allocated by Get.
	Allocs uint64
	// Reuses counts Get calls satisfied from the free lists.
	Reuses uint64
	// Discards counts buffers dropped by Put over the idle limit.
	Discards uint64
	// Idle is the current number of pooled buffers across all lengths.
	Idle int
}

// Stats returns current pool statistics.
func (p *BufferPool) Stats() PoolStats {
	s := PoolStats{
		Allocs:   p.allocs,
		Reuses:   p.reuses,
		Discards: p.discards,
	}
	for _, list := range p.free {
		s.Idle += len(list)
	}
	return s
}
