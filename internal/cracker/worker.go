package cracker

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lth/hashfind/internal/digest"
	"github.com/lth/hashfind/internal/hashfind"
)

// progressEvery is how many candidates a worker hashes between publishing
// its attempt count.
const progressEvery = 4096

type worker struct {
	id     int
	total  int
	target digest.Target
	match  *match
	stop   *atomic.Bool
	owner  *Cracker
	logger *slog.Logger
}

// run walks the worker's share of every bucket in increasing index order,
// polling stop before each candidate.
func (w *worker) run(space hashfind.Space) hashfind.WorkerStats {
	start := time.Now()
	w.logger.Info("worker started")

	primitive := w.target.Algorithm.New()
	candidate := make([]byte, 0, 64)
	sum := make([]byte, 0, w.target.Algorithm.HexLen())

	var tried, pending uint64
	found := false

search:
	for b := 0; b < space.Buckets(); b++ {
		r := Partition(space.Size(b), w.total, w.id)
		for i := r.Start; i < r.Stop; i++ {
			if w.stop.Load() {
				break search
			}

			candidate = space.Fill(b, i, candidate)
			primitive.Reset()
			primitive.Update(candidate)
			primitive.Finalize()
			sum = primitive.AppendHexDigest(sum[:0])
			tried++
			pending++

			if w.target.Matches(sum) {
				word := string(candidate)
				if w.match.Claim(word) {
					found = true
					w.stop.Store(true)
					w.logger.Info("collision found", slog.String("candidate", word))
				}
				break search
			}

			if pending == progressEvery {
				w.owner.addAttempts(pending, candidate)
				pending = 0
			}
		}
	}
	w.owner.addAttempts(pending, nil)

	elapsed := time.Since(start)
	w.logger.Info("worker stopped",
		slog.Uint64("tried", tried),
		slog.Duration("elapsed", elapsed),
	)

	return hashfind.WorkerStats{
		Worker:  w.id,
		Tried:   tried,
		Elapsed: elapsed,
		Found:   found,
	}
}
