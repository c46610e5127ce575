package bench

import "time"

// Allocator names used in results.
const (
	AllocatorCustom = "custom"
	AllocatorHeap   = "heap"
)

// Sample is the measurement of one frame.
type Sample struct {
	Frame   int
	Elapsed time.Duration
	Dropped int // allocations refused because the allocator was exhausted
}

// Result holds every frame measured for one scenario/allocator pair.
type Result struct {
	Scenario  string
	Allocator string
	Samples   []Sample
}

// Summary aggregates a Result.
type Summary struct {
	Frames  int
	Total   time.Duration
	Min     time.Duration
	Mean    time.Duration
	Max     time.Duration
	Dropped int
}

// Summary computes min/mean/max frame times. The zero Summary is returned
// for a result without samples.
func (r Result) Summary() Summary {
	var s Summary
	if len(r.Samples) == 0 {
		return s
	}
	s.Frames = len(r.Samples)
	s.Min = r.Samples[0].Elapsed
	for _, smp := range r.Samples {
		s.Total += smp.Elapsed
		s.Dropped += smp.Dropped
		if smp.Elapsed < s.Min {
			s.Min = smp.Elapsed
		}
		if smp.Elapsed > s.Max {
			s.Max = smp.Elapsed
		}
	}
	s.Mean = s.Total / time.Duration(s.Frames)
	return s
}
