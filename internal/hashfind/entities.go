package hashfind

import "time"

// Range represents a half-open index range [Start, Stop).
type Range struct {
	Start uint64
	Stop  uint64
}

func (r Range) Len() uint64 {
	if r.Stop <= r.Start {
		return 0
	}
	return r.Stop - r.Start
}

func (r Range) Empty() bool {
	return r.Len() == 0
}

type Result struct {
	Found     bool
	Candidate string
	Attempts  uint64
	Duration  time.Duration
	Cancelled bool
	Workers   []WorkerStats
}

type WorkerStats struct {
	Worker  int
	Tried   uint64
	Elapsed time.Duration
	Found   bool
}

type Progress struct {
	Attempts    uint64
	Rate        float64
	Current     string
	ElapsedTime time.Duration
}
