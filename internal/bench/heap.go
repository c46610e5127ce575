package bench

import "github.com/pavanmanishd/framealloc"

// HeapAllocator is the reference allocator: every Alloc is a fresh Go heap
// allocation and Free leaves reclamation to the garbage collector.
// It is safe to use from multiple goroutines.
type HeapAllocator struct {
	Size int
}

var _ framealloc.BlockAllocator = (*HeapAllocator)(nil)

// Alloc returns a new zeroed block of h.Size bytes.
func (h *HeapAllocator) Alloc() []byte {
	return make([]byte, h.Size)
}

// Free is a no-op.
func (h *HeapAllocator) Free(b []byte) error {
	return nil
}
