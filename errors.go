package framealloc

import "errors"

var (
	// ErrOutOfMemory is returned when the backing region cannot be allocated.
	ErrOutOfMemory = errors.New("framealloc: out of memory")

	// ErrInvalidSize is returned for negative, zero or overflowing sizes.
	ErrInvalidSize = errors.New("framealloc: invalid size")

	// ErrArenaOverflow is returned when a bump would move past the end of the arena.
	ErrArenaOverflow = errors.New("framealloc: arena overflow")

	// ErrPoolExhausted signals that a pool has no free slot left.
	// Pool.Alloc reports it as a nil slice; Obtain converts that to this error.
	ErrPoolExhausted = errors.New("framealloc: pool exhausted")

	// ErrInvalidMark is returned when rewinding to a mark outside the arena.
	ErrInvalidMark = errors.New("framealloc: invalid mark")

	// ErrInvalidHandle is returned when freeing memory the pool did not hand out.
	ErrInvalidHandle = errors.New("framealloc: invalid handle")

	// ErrContractViolation wraps misuse detected only by debug builds.
	ErrContractViolation = errors.New("framealloc: contract violation")
)
