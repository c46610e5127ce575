package framealloc

import (
	"math"
	"unsafe"
)

// New returns a pointer to a zeroed T stored on the stack.
// The cursor is padded to T's alignment first. T must not contain Go
// pointers: the garbage collector does not scan arena memory.
// The returned pointer is valid until the stack is rewound past it,
// cleared or released.
func New[T any](s *StackAllocator) (*T, error) {
	var zero T
	b, err := allocAligned(s, int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return &zero, nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// NewSlice allocates a zeroed slice of n elements of type T on the stack.
// Returns nil if n <= 0.
func NewSlice[T any](s *StackAllocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n), nil
	}
	if n > math.MaxInt/elemSize {
		return nil, ErrInvalidSize
	}
	b, err := allocAligned(s, elemSize*n, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// allocAligned allocates size bytes starting at a multiple of align.
// On failure the cursor is restored.
func allocAligned(s *StackAllocator, size int, align uintptr) ([]byte, error) {
	s.arena.panicIfReleased()
	mark := s.Pointer()
	if err := s.alignTo(align); err != nil {
		return nil, err
	}
	b, err := s.Alloc(size)
	if err != nil {
		s.offset = int(mark)
		return nil, err
	}
	return b, nil
}
