package framealloc

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Arena owns a single contiguous region of memory. It is allocated once,
// never grows, and is dropped by Release. An Arena is owned by exactly one
// allocator.
type Arena struct {
	buf []byte
}

// NewArena allocates a region of size bytes.
// Returns ErrInvalidSize if size <= 0 and ErrOutOfMemory if the runtime
// refuses the allocation.
func NewArena(size int) (a *Arena, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: arena size %d", ErrInvalidSize, size)
	}
	defer func() {
		if r := recover(); r != nil {
			// makeslice reports "len out of range" as a runtime.Error
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			a, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, size, r)
		}
	}()
	return &Arena{buf: make([]byte, size)}, nil
}

// Size returns the size of the region in bytes, 0 after Release.
func (a *Arena) Size() int {
	return len(a.buf)
}

// Bytes returns the whole region.
func (a *Arena) Bytes() []byte {
	a.panicIfReleased()
	return a.buf
}

// Offset returns the offset of b's first byte inside the region.
// It reports false for empty slices and slices that start outside the arena.
func (a *Arena) Offset(b []byte) (int, bool) {
	if a.buf == nil || cap(b) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < base || p >= base+uintptr(len(a.buf)) {
		return 0, false
	}
	return int(p - base), true
}

// Release drops the region. Any subsequent use of the arena panics.
func (a *Arena) Release() {
	a.buf = nil
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.buf == nil
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("framealloc: use after Release()")
	}
}

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
