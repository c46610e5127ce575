package framealloc

import (
	"errors"
	"fmt"
	"sync"
)

// Example demonstrates basic stack allocator usage
func Example() {
	s, err := NewStackAllocator(1024)
	if err != nil {
		panic(err)
	}
	defer s.Release() // Always clean up

	// Allocate raw bytes
	buf, _ := s.Alloc(100)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	ptr, _ := New[int64](s)
	*ptr = 42
	fmt.Printf("Allocated int64 with value: %d\n", *ptr)

	fmt.Printf("Memory in use: %d bytes\n", s.AllocatedSize())

	// Clear for reuse (O(1) operation)
	s.Clear()
	fmt.Printf("After clear, memory in use: %d bytes\n", s.AllocatedSize())

	// Output:
	// Allocated buffer of size: 100
	// Allocated int64 with value: 42
	// Memory in use: 112 bytes
	// After clear, memory in use: 0 bytes
}

// ExampleStackAllocator_Rewind demonstrates scoped allocation with marks
func ExampleStackAllocator_Rewind() {
	s, _ := NewStackAllocator(1024)
	defer s.Release()

	s.Alloc(64) // lives for the whole frame

	for pass := 1; pass <= 3; pass++ {
		mark := s.Pointer()
		s.Alloc(128) // scratch space for this pass
		fmt.Printf("Pass %d - Memory in use: %d bytes\n", pass, s.AllocatedSize())
		s.Rewind(mark)
	}
	fmt.Printf("After passes: %d bytes\n", s.AllocatedSize())

	// Output:
	// Pass 1 - Memory in use: 192 bytes
	// Pass 2 - Memory in use: 192 bytes
	// Pass 3 - Memory in use: 192 bytes
	// After passes: 64 bytes
}

// ExamplePool demonstrates fixed-size slot allocation
func ExamplePool() {
	p, err := NewPool(64, 4)
	if err != nil {
		panic(err)
	}
	defer p.Release()

	var slots [][]byte
	for {
		b := p.Alloc()
		if b == nil {
			break
		}
		slots = append(slots, b)
	}
	fmt.Printf("Obtained %d slots, pool exhausted: %v\n", len(slots), p.Available() == 0)

	p.Free(slots[0])
	fmt.Printf("Available after free: %d\n", p.Available())

	// Output:
	// Obtained 4 slots, pool exhausted: true
	// Available after free: 1
}

// ExamplePool_Free demonstrates the errors reported for bad frees
func ExamplePool_Free() {
	p, _ := NewPool(32, 2)
	defer p.Release()

	err := p.Free(make([]byte, 32))
	fmt.Println(errors.Is(err, ErrInvalidHandle))

	// Output:
	// true
}

// ExampleThreadedPool demonstrates sharing a pool between goroutines
func ExampleThreadedPool() {
	tp, _ := NewThreadedPool(16, 8)
	defer tp.Release()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			b := tp.Alloc()
			b[0] = byte(id)
			tp.Free(b)
		}(i)
	}
	wg.Wait()

	fmt.Printf("Slots in use after workers finish: %d\n", tp.InUse())

	// Output:
	// Slots in use after workers finish: 0
}

// ExampleStackMetrics demonstrates monitoring a stack allocator
func ExampleStackMetrics() {
	s, _ := NewStackAllocator(1000)
	defer s.Release()

	s.Alloc(300)
	s.Alloc(100)
	s.Clear()
	s.Alloc(50)

	metrics := s.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size in use: %d bytes\n", metrics.SizeInUse)
	fmt.Printf("  Capacity: %d bytes\n", metrics.Capacity)
	fmt.Printf("  Peak: %d bytes\n", metrics.Peak)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Size in use: 50 bytes
	//   Capacity: 1000 bytes
	//   Peak: 400 bytes
	//   Utilization: 5.0%
}
