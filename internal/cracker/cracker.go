package cracker

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lth/hashfind/internal/digest"
	"github.com/lth/hashfind/internal/hashfind"
)

type Cracker struct {
	target     digest.Target
	workers    int
	logger     *slog.Logger
	progressCb func(hashfind.Progress)

	attempts  atomic.Uint64
	startTime time.Time
}

func New(target digest.Target, workers int) *Cracker {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Cracker{
		target:  target,
		workers: workers,
		logger:  slog.Default(),
	}
}

func (c *Cracker) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// SetProgressCallback registers cb; it is called concurrently from workers.
func (c *Cracker) SetProgressCallback(cb func(hashfind.Progress)) {
	c.progressCb = cb
}

func (c *Cracker) Workers() int {
	return c.workers
}

func (c *Cracker) Attempts() uint64 {
	return c.attempts.Load()
}

func (c *Cracker) addAttempts(n uint64, current []byte) {
	attempts := c.attempts.Add(n)
	if c.progressCb == nil || current == nil {
		return
	}

	elapsed := time.Since(c.startTime)
	c.progressCb(hashfind.Progress{
		Attempts:    attempts,
		Rate:        float64(attempts) / elapsed.Seconds(),
		Current:     string(current),
		ElapsedTime: elapsed,
	})
}

// Run searches space with one goroutine per worker and waits for all of
// them. Cancelling ctx stops the workers the same way a match does.
func (c *Cracker) Run(ctx context.Context, space hashfind.Space) hashfind.Result {
	c.startTime = time.Now()
	c.attempts.Store(0)

	var found match
	var stop atomic.Bool
	if ctx.Err() != nil {
		stop.Store(true)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			stop.Store(true)
		case <-done:
		}
	}()

	c.logger.Debug("starting workers",
		slog.Int("workers", c.workers),
		slog.String("space", space.String()),
	)

	stats := make([]hashfind.WorkerStats, c.workers)
	var wg sync.WaitGroup

	for i := 1; i <= c.workers; i++ {
		w := &worker{
			id:     i,
			total:  c.workers,
			target: c.target,
			match:  &found,
			stop:   &stop,
			owner:  c,
			logger: c.logger.With(slog.Int("worker", i)),
		}

		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			stats[w.id-1] = w.run(space)
		}(w)
	}

	wg.Wait()
	close(done)

	candidate, ok := found.Load()
	attempts := c.attempts.Load()
	return hashfind.Result{
		Found:     ok,
		Candidate: candidate,
		Attempts:  attempts,
		Duration:  time.Since(c.startTime),
		// an exhausted space finished, however late ctx was cancelled
		Cancelled: !ok && attempts < hashfind.TotalSize(space),
		Workers:   stats,
	}
}
