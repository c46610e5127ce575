package framealloc

// StackMetrics contains statistical information about a stack allocator.
type StackMetrics struct {
	SizeInUse   int     // Bytes between Begin and Pointer
	Capacity    int     // Total capacity in bytes
	Peak        int     // Highest cursor position since construction
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	ElementSize  int     // Slot size in bytes
	ElementCount int     // Total slots
	InUse        int     // Slots handed out
	Available    int     // Slots on the free list
	Utilization  float64 // Ratio of InUse to ElementCount (0.0-1.0)
}

// Utilization returns the ratio of allocated bytes to capacity (0.0 to 1.0).
// Returns 0.0 once the stack has been released.
func (s *StackAllocator) Utilization() float64 {
	capacity := s.TotalSize()
	if capacity == 0 {
		return 0
	}
	return float64(s.offset) / float64(capacity)
}

// Peak returns the highest cursor position reached. It survives Rewind and Clear.
func (s *StackAllocator) Peak() int {
	return s.peak
}

// Metrics returns a snapshot of stack statistics.
func (s *StackAllocator) Metrics() StackMetrics {
	return StackMetrics{
		SizeInUse:   s.AllocatedSize(),
		Capacity:    s.TotalSize(),
		Peak:        s.Peak(),
		Utilization: s.Utilization(),
	}
}

// Utilization returns the ratio of slots in use to total slots (0.0 to 1.0).
func (p *Pool) Utilization() float64 {
	if p.elementCount == 0 {
		return 0
	}
	return float64(p.InUse()) / float64(p.elementCount)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		ElementSize:  p.elementSize,
		ElementCount: p.elementCount,
		InUse:        p.InUse(),
		Available:    p.Available(),
		Utilization:  p.Utilization(),
	}
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (t *ThreadedPool) Metrics() PoolMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Metrics()
}
