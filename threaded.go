package framealloc

import (
	"sync"
)

// ThreadedPool is a mutex-protected wrapper around Pool for concurrent access.
// Only the bookkeeping is synchronized: two goroutines must not touch the
// payload of the same slot without their own coordination.
type ThreadedPool struct {
	mu sync.Mutex
	p  *Pool
}

var _ BlockAllocator = (*ThreadedPool)(nil)

// NewThreadedPool creates a goroutine-safe pool of elementCount slots of
// elementSize bytes each.
func NewThreadedPool(elementSize, elementCount int) (*ThreadedPool, error) {
	p, err := NewPool(elementSize, elementCount)
	if err != nil {
		return nil, err
	}
	return &ThreadedPool{p: p}, nil
}

// Alloc thread-safely obtains one slot. Returns nil when the pool is exhausted;
// it never waits for another goroutine to free a slot.
func (t *ThreadedPool) Alloc() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Alloc()
}

// Free thread-safely returns a slot to the pool.
func (t *ThreadedPool) Free(b []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Free(b)
}

// ElementSize returns the size of one slot in bytes.
func (t *ThreadedPool) ElementSize() int {
	return t.p.ElementSize()
}

// ElementCount returns the total number of slots.
func (t *ThreadedPool) ElementCount() int {
	return t.p.ElementCount()
}

// Available thread-safely returns the number of free slots.
func (t *ThreadedPool) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Available()
}

// InUse thread-safely returns the number of slots currently handed out.
func (t *ThreadedPool) InUse() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.InUse()
}

// Release thread-safely drops the pool's memory.
func (t *ThreadedPool) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Release()
}
