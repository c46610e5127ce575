// Package framealloc implements fixed-capacity allocators for short-lived,
// size-homogeneous workloads such as per-frame particle objects.
//
// # Overview
//
// Every allocator owns a single Arena allocated once at construction. Arenas
// never grow: running out of space is reported to the caller, who decides
// whether that is fatal.
//
//   - StackAllocator: a bump allocator. Alloc advances a cursor, Rewind moves
//     it back to an earlier Mark, Clear resets it. There is no per-allocation
//     Free.
//   - Pool: a fixed-block allocator. The arena is split into equal slots kept
//     on a FreeList; Alloc pops a slot and Free pushes it back.
//   - ThreadedPool: a Pool guarded by a mutex for sharing across goroutines.
//
// # Basic Usage
//
//	s, err := framealloc.NewStackAllocator(1 << 20)
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	mark := s.Pointer()
//	buf, err := s.Alloc(256)
//	v, err := framealloc.New[Vec3](s)
//	s.Rewind(mark) // reclaims buf and v
//
//	p, err := framealloc.NewPool(64, 1024)
//	if err != nil {
//		return err
//	}
//	defer p.Release()
//
//	slot := p.Alloc()
//	if slot == nil {
//		// pool exhausted
//	}
//	p.Free(slot)
//
// # Thread Safety
//
// StackAllocator and Pool are not goroutine-safe; give each goroutine its own
// instance. ThreadedPool serializes Alloc and Free, but not access to the
// memory of the slots it hands out.
//
// # Debug Checks
//
// By default the pool tracks which slots are in use and rejects double frees
// with ErrContractViolation. Building with -tags release removes that
// bookkeeping; misuse then corrupts the free list silently. Bounds checks on
// Rewind and Free are always on.
//
// # Important Notes
//
//   - Memory is only valid while the allocator exists and, for the stack,
//     until the cursor is moved back past it
//   - Memory returned by Alloc is not zeroed; New and NewSlice zero it
//   - Arena memory is not scanned by the garbage collector, so do not store
//     Go pointers in it
//   - Any use after Release panics
package framealloc
