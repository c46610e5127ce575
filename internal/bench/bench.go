// Package bench drives the particle and stack workloads against the custom
// allocators and against the Go heap, recording the time of every frame.
package bench

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/framealloc"
	"github.com/pavanmanishd/framealloc/internal/config"
	"github.com/pavanmanishd/framealloc/internal/lifetime"
	"github.com/pavanmanishd/framealloc/internal/particle"
	"github.com/pavanmanishd/framealloc/internal/timer"
)

// Scenario names.
const (
	ScenarioPool     = "pool"
	ScenarioThreaded = "threaded"
	ScenarioStack    = "stack"
)

// Scenarios lists every scenario in the order "all" runs them.
var Scenarios = []string{ScenarioPool, ScenarioThreaded, ScenarioStack}

// Runner executes scenarios with one configuration.
type Runner struct {
	conf *config.Config
	log  logrus.FieldLogger
}

// NewRunner creates a runner. conf must have passed Validate.
func NewRunner(conf *config.Config, log logrus.FieldLogger) *Runner {
	return &Runner{conf: conf, log: log}
}

// Run executes scenario once with the custom allocator and once with the
// heap, returning both results.
func (r *Runner) Run(ctx context.Context, scenario string) ([]Result, error) {
	var run func(ctx context.Context, custom bool) (Result, error)
	switch scenario {
	case ScenarioPool:
		run = r.pool
	case ScenarioThreaded:
		run = r.threaded
	case ScenarioStack:
		run = r.stack
	default:
		return nil, fmt.Errorf("unknown scenario %q", scenario)
	}

	var results []Result
	for _, custom := range []bool{true, false} {
		res, err := run(ctx, custom)
		if err != nil {
			return results, fmt.Errorf("%s/%s: %w", scenario, res.Allocator, err)
		}
		sum := res.Summary()
		r.log.WithFields(logrus.Fields{
			"scenario":  res.Scenario,
			"allocator": res.Allocator,
			"frames":    sum.Frames,
			"mean":      sum.Mean,
			"dropped":   sum.Dropped,
		}).Info("Scenario finished")
		results = append(results, res)
	}
	return results, nil
}

func allocatorName(custom bool) string {
	if custom {
		return AllocatorCustom
	}
	return AllocatorHeap
}

// pool runs one particle system on a single goroutine. After the configured
// frames it stops spawning and keeps simulating until every particle died.
func (r *Runner) pool(ctx context.Context, custom bool) (Result, error) {
	res := Result{Scenario: ScenarioPool, Allocator: allocatorName(custom)}

	var alloc framealloc.BlockAllocator = &HeapAllocator{Size: particle.Size}
	if custom {
		p, err := framealloc.NewPool(particle.Size, r.conf.PoolCapacity)
		if err != nil {
			return res, err
		}
		defer p.Release()
		alloc = p
	}

	r.log.WithFields(logrus.Fields{"scenario": res.Scenario, "allocator": res.Allocator}).Debug("Starting scenario")

	sys := particle.NewSystem(alloc, lifetime.New(r.conf.Seed, r.conf.MaxLifetime))
	var tm timer.Timer
	for frame := 0; frame < r.conf.Frames || !sys.Done(); frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		spawn := r.conf.ParticlesPerFrame
		if frame >= r.conf.Frames {
			spawn = 0
		}

		tm.Start()
		st, err := sys.Frame(spawn)
		elapsed := tm.Stop()
		if err != nil {
			return res, err
		}
		res.Samples = append(res.Samples, Sample{Frame: frame, Elapsed: elapsed, Dropped: st.Dropped})
	}
	return res, nil
}

// threaded runs one particle system per worker, all sharing one allocator.
// Workers are started and joined every frame.
func (r *Runner) threaded(ctx context.Context, custom bool) (Result, error) {
	res := Result{Scenario: ScenarioThreaded, Allocator: allocatorName(custom)}

	var alloc framealloc.BlockAllocator = &HeapAllocator{Size: particle.Size}
	if custom {
		tp, err := framealloc.NewThreadedPool(particle.Size, r.conf.PoolCapacity)
		if err != nil {
			return res, err
		}
		defer tp.Release()
		alloc = tp
	}

	seq := lifetime.New(r.conf.Seed, r.conf.MaxLifetime)
	systems := make([]*particle.System, r.conf.Workers)
	for i := range systems {
		systems[i] = particle.NewSystem(alloc, seq.Fork(i))
	}
	dropped := make([]int, r.conf.Workers)

	var tm timer.Timer
	for frame := 0; frame < r.conf.Frames || !allDone(systems); frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		spawn := r.conf.ParticlesPerFrame
		if frame >= r.conf.Frames {
			spawn = 0
		}

		tm.Start()
		var g errgroup.Group
		for i, sys := range systems {
			g.Go(func() error {
				st, err := sys.Frame(spawn)
				dropped[i] = st.Dropped
				return err
			})
		}
		err := g.Wait()
		elapsed := tm.Stop()
		if err != nil {
			return res, err
		}

		smp := Sample{Frame: frame, Elapsed: elapsed}
		for _, d := range dropped {
			smp.Dropped += d
		}
		res.Samples = append(res.Samples, smp)
	}
	return res, nil
}

func allDone(systems []*particle.System) bool {
	for _, s := range systems {
		if !s.Done() {
			return false
		}
	}
	return true
}

// stack has every worker allocate ObjectsPerWorker blocks of growing size
// (1, 2, ... bytes) per frame and drop them all at the end of the frame.
// The custom variant gives each worker a private StackAllocator.
func (r *Runner) stack(ctx context.Context, custom bool) (Result, error) {
	res := Result{Scenario: ScenarioStack, Allocator: allocatorName(custom)}
	n := r.conf.ObjectsPerWorker

	var stacks []*framealloc.StackAllocator
	if custom {
		capacity := n * (n + 1) / 2
		stacks = make([]*framealloc.StackAllocator, r.conf.Workers)
		for i := range stacks {
			s, err := framealloc.NewStackAllocator(capacity)
			if err != nil {
				return res, err
			}
			defer s.Release()
			stacks[i] = s
		}
	}

	var tm timer.Timer
	for frame := 0; frame < r.conf.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		tm.Start()
		var g errgroup.Group
		for w := 0; w < r.conf.Workers; w++ {
			if custom {
				s := stacks[w]
				g.Go(func() error { return stackTask(s, n) })
			} else {
				g.Go(func() error { heapTask(n); return nil })
			}
		}
		err := g.Wait()
		elapsed := tm.Stop()
		if err != nil {
			return res, err
		}
		res.Samples = append(res.Samples, Sample{Frame: frame, Elapsed: elapsed})
	}
	return res, nil
}

func stackTask(s *framealloc.StackAllocator, n int) error {
	for i := 0; i < n; i++ {
		b, err := s.Alloc(i + 1)
		if err != nil {
			return err
		}
		b[0] = byte(i)
	}
	s.Clear()
	return nil
}

func heapTask(n int) {
	blocks := make([][]byte, n)
	for i := range blocks {
		blocks[i] = make([]byte, i+1)
		blocks[i][0] = byte(i)
	}
}
