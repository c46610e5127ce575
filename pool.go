package framealloc

import (
	"fmt"
	"math"
)

// BlockAllocator hands out fixed-size blocks of memory.
// Alloc returns nil when no block is available.
type BlockAllocator interface {
	Alloc() []byte
	Free(b []byte) error
}

// Pool is a fixed-block allocator. All elementCount slots of elementSize bytes
// are carved from one arena at construction and linked into a FreeList;
// Alloc and Free are O(1) and never allocate.
//
// A Pool is not goroutine-safe. Use ThreadedPool for concurrent access.
type Pool struct {
	arena        *Arena
	list         FreeList
	elementSize  int
	elementCount int
	inUse        []bool // debug builds only
}

var _ BlockAllocator = (*Pool)(nil)

// Obtain allocates a block from a, turning the nil exhaustion sentinel into
// ErrPoolExhausted.
func Obtain(a BlockAllocator) ([]byte, error) {
	b := a.Alloc()
	if b == nil {
		return nil, ErrPoolExhausted
	}
	return b, nil
}

// NewPool creates a pool of elementCount slots of elementSize bytes each.
func NewPool(elementSize, elementCount int) (*Pool, error) {
	if elementSize <= 0 || elementCount <= 0 || elementCount > math.MaxInt32 {
		return nil, fmt.Errorf("%w: pool of %d x %d bytes", ErrInvalidSize, elementCount, elementSize)
	}
	if elementSize > math.MaxInt/elementCount {
		return nil, fmt.Errorf("%w: pool of %d x %d bytes overflows", ErrInvalidSize, elementCount, elementSize)
	}
	a, err := NewArena(elementSize * elementCount)
	if err != nil {
		return nil, fmt.Errorf("pool: %w", err)
	}
	p := &Pool{
		arena:        a,
		elementSize:  elementSize,
		elementCount: elementCount,
	}
	p.list.Initialize(elementCount)
	if debugChecks {
		p.inUse = make([]bool, elementCount)
	}
	return p, nil
}

// Alloc obtains one slot. The returned memory is not zeroed and holds
// whatever its previous user left in it.
// Returns nil when the pool is exhausted.
func (p *Pool) Alloc() []byte {
	p.arena.panicIfReleased()
	i, ok := p.list.Obtain()
	if !ok {
		return nil
	}
	if debugChecks {
		invariant(!p.inUse[i], "slot %d handed out twice", i)
		p.inUse[i] = true
	}
	return p.slot(i)
}

// Free returns a slot obtained from Alloc to the pool.
// b must start on a slot boundary inside this pool, otherwise ErrInvalidHandle
// is returned. Debug builds also reject freeing a slot that is already free.
func (p *Pool) Free(b []byte) error {
	p.arena.panicIfReleased()
	i, err := p.index(b)
	if err != nil {
		return err
	}
	if debugChecks {
		if !p.inUse[i] {
			return fmt.Errorf("%w: %w: slot %d freed twice", ErrContractViolation, ErrInvalidHandle, i)
		}
		p.inUse[i] = false
	}
	p.list.Lose(i)
	return nil
}

// ElementSize returns the size of one slot in bytes.
func (p *Pool) ElementSize() int {
	return p.elementSize
}

// ElementCount returns the total number of slots.
func (p *Pool) ElementCount() int {
	return p.elementCount
}

// Available returns the number of free slots.
func (p *Pool) Available() int {
	return p.list.Len()
}

// InUse returns the number of slots currently handed out.
func (p *Pool) InUse() int {
	if p.arena.Released() {
		return 0
	}
	return p.elementCount - p.list.Len()
}

// Contains reports whether b starts inside the pool's arena.
func (p *Pool) Contains(b []byte) bool {
	_, ok := p.arena.Offset(b)
	return ok
}

// Release drops the arena and the free list. Any subsequent Alloc or Free panics.
func (p *Pool) Release() {
	p.list.Free()
	p.arena.Release()
	p.inUse = nil
}

func (p *Pool) slot(i int) []byte {
	start := i * p.elementSize
	end := start + p.elementSize
	return p.arena.buf[start:end:end]
}

// index maps a slot slice back to its slot number.
func (p *Pool) index(b []byte) (int, error) {
	off, ok := p.arena.Offset(b)
	if !ok {
		return 0, fmt.Errorf("%w: slice does not belong to this pool", ErrInvalidHandle)
	}
	if off%p.elementSize != 0 {
		return 0, fmt.Errorf("%w: offset %d is not on a %d-byte slot boundary", ErrInvalidHandle, off, p.elementSize)
	}
	return off / p.elementSize, nil
}
