// Package particle simulates a lifetime-only particle system on top of a
// fixed-block allocator. Each frame spawns particles, ages them and frees
// the ones whose lifetime has run out.
package particle

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hashicorp/go-multierror"

	"github.com/pavanmanishd/framealloc"
	"github.com/pavanmanishd/framealloc/internal/lifetime"
)

// Particle is the payload stored in each allocator slot.
type Particle struct {
	Lifetime int32
	Age      int32
}

// Size is the slot size a particle needs.
const Size = int(unsafe.Sizeof(Particle{}))

// ErrSlotTooSmall is returned when an allocator hands out a slot that cannot
// hold a Particle.
var ErrSlotTooSmall = errors.New("particle: slot too small")

// FrameStats summarizes one simulated frame.
type FrameStats struct {
	Spawned int
	Dropped int // spawns refused because the allocator was exhausted
	Died    int
	Alive   int
}

// System owns the particles it spawned. It is not goroutine-safe, but
// several systems may share one goroutine-safe allocator.
type System struct {
	alloc framealloc.BlockAllocator
	seq   *lifetime.Sequence
	live  [][]byte
}

// NewSystem creates an empty system drawing slots from alloc and lifetimes
// from seq.
func NewSystem(alloc framealloc.BlockAllocator, seq *lifetime.Sequence) *System {
	return &System{alloc: alloc, seq: seq}
}

// Frame spawns up to spawn particles, ages every live particle by one frame
// and frees the ones that died. Exhaustion is not an error: refused spawns
// are counted in Dropped.
func (s *System) Frame(spawn int) (FrameStats, error) {
	var st FrameStats
	for i := 0; i < spawn; i++ {
		b, err := framealloc.Obtain(s.alloc)
		if errors.Is(err, framealloc.ErrPoolExhausted) {
			st.Dropped = spawn - i
			break
		}
		p, err := at(b)
		if err != nil {
			return st, err
		}
		*p = Particle{Lifetime: int32(s.seq.Next())}
		s.live = append(s.live, b)
		st.Spawned++
	}

	kept := s.live[:0]
	for _, b := range s.live {
		p := (*Particle)(unsafe.Pointer(&b[0]))
		p.Age++
		if p.Age < p.Lifetime {
			kept = append(kept, b)
			continue
		}
		if err := s.alloc.Free(b); err != nil {
			return st, fmt.Errorf("free dead particle: %w", err)
		}
		st.Died++
	}
	clear(s.live[len(kept):])
	s.live = kept
	st.Alive = len(s.live)
	return st, nil
}

// Alive returns the number of live particles.
func (s *System) Alive() int {
	return len(s.live)
}

// Done reports whether every particle has died.
func (s *System) Done() bool {
	return len(s.live) == 0
}

// Drain frees every live particle.
func (s *System) Drain() error {
	var result *multierror.Error
	for _, b := range s.live {
		if err := s.alloc.Free(b); err != nil {
			result = multierror.Append(result, err)
		}
	}
	clear(s.live)
	s.live = s.live[:0]
	return result.ErrorOrNil()
}

func at(b []byte) (*Particle, error) {
	if len(b) < Size {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrSlotTooSmall, len(b), Size)
	}
	return (*Particle)(unsafe.Pointer(&b[0])), nil
}
