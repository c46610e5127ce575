package framealloc

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Mark is a position in a StackAllocator, measured in bytes from its beginning.
// Marks are only meaningful for the allocator that produced them.
type Mark int

// StackAllocator is a linear bump allocator over a single fixed-size arena.
// Allocations are never freed individually: memory is reclaimed by rewinding
// the cursor to an earlier Mark or by clearing the whole stack.
//
// A StackAllocator is not goroutine-safe. Use one instance per goroutine.
type StackAllocator struct {
	arena  *Arena
	offset int
	peak   int
}

// NewStackAllocator creates a stack allocator able to hand out capacity bytes.
func NewStackAllocator(capacity int) (*StackAllocator, error) {
	a, err := NewArena(capacity)
	if err != nil {
		return nil, fmt.Errorf("stack allocator: %w", err)
	}
	return &StackAllocator{arena: a}, nil
}

// Alloc returns the next size bytes of the stack and advances the cursor.
// The returned memory is not zeroed and has no alignment beyond one byte.
// Returns nil for size == 0 and ErrArenaOverflow if the stack cannot fit
// size more bytes; the cursor is left untouched in that case.
func (s *StackAllocator) Alloc(size int) ([]byte, error) {
	s.arena.panicIfReleased()
	if size < 0 {
		return nil, fmt.Errorf("%w: alloc %d bytes", ErrInvalidSize, size)
	}
	if size == 0 {
		return nil, nil
	}
	off := s.offset
	if size > len(s.arena.buf)-off {
		return nil, fmt.Errorf("%w: requested %d bytes, %d remaining",
			ErrArenaOverflow, size, len(s.arena.buf)-off)
	}
	s.offset = off + size
	if s.offset > s.peak {
		s.peak = s.offset
	}
	return s.arena.buf[off:s.offset:s.offset], nil
}

// PushUint32 allocates four bytes and stores v in them in native byte order.
func (s *StackAllocator) PushUint32(v uint32) error {
	b, err := s.Alloc(4)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint32(b, v)
	return nil
}

// Rewind moves the cursor to m. Everything allocated after m is reclaimed.
// Marks outside [Begin(), Begin()+TotalSize()] are rejected with ErrInvalidMark.
func (s *StackAllocator) Rewind(m Mark) error {
	s.arena.panicIfReleased()
	if m < 0 || int(m) > len(s.arena.buf) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMark, m, len(s.arena.buf))
	}
	s.offset = int(m)
	s.peak = max(s.peak, s.offset)
	return nil
}

// Clear rewinds the stack to its beginning, reclaiming every allocation.
func (s *StackAllocator) Clear() {
	s.arena.panicIfReleased()
	s.offset = 0
}

// MarkOf returns the mark at which b starts. b must have been returned by
// Alloc on this allocator; rewinding to it reclaims b and everything after it.
func (s *StackAllocator) MarkOf(b []byte) (Mark, error) {
	s.arena.panicIfReleased()
	off, ok := s.arena.Offset(b)
	if !ok {
		return 0, fmt.Errorf("%w: slice does not belong to this stack", ErrInvalidMark)
	}
	return Mark(off), nil
}

// Pointer returns the current cursor.
func (s *StackAllocator) Pointer() Mark {
	return Mark(s.offset)
}

// Begin returns the mark of the first byte of the stack.
func (s *StackAllocator) Begin() Mark {
	return 0
}

// TotalSize returns the capacity of the stack in bytes.
func (s *StackAllocator) TotalSize() int {
	return s.arena.Size()
}

// AllocatedSize returns the number of bytes between Begin and Pointer.
func (s *StackAllocator) AllocatedSize() int {
	return s.offset
}

// Release drops the backing arena. Any subsequent Alloc, Rewind or Clear panics.
func (s *StackAllocator) Release() {
	s.arena.Release()
	s.offset = 0
	s.peak = 0
}

// alignTo pads the cursor so that the next allocation starts at an address
// that is a multiple of align.
func (s *StackAllocator) alignTo(align uintptr) error {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(s.arena.buf)))
	addr := base + uintptr(s.offset)
	off := s.offset + int(alignUp(addr, align)-addr)
	if off > len(s.arena.buf) {
		return fmt.Errorf("%w: alignment padding past end of stack", ErrArenaOverflow)
	}
	s.offset = off
	return nil
}
