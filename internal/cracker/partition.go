package cracker

import (
	"math/bits"

	"github.com/lth/hashfind/internal/hashfind"
)

// Partition returns the range of thread (1..k) over [0, n):
// [floor((thread-1)*n/k), floor(thread*n/k)). The last thread always ends at n.
func Partition(n uint64, k, thread int) hashfind.Range {
	if k < 1 || thread < 1 || thread > k {
		return hashfind.Range{}
	}

	r := hashfind.Range{
		Start: mulDiv(uint64(thread-1), n, uint64(k)),
		Stop:  mulDiv(uint64(thread), n, uint64(k)),
	}
	if thread == k {
		r.Stop = n
	}
	return r
}

// Split returns all k ranges of [0, n) in thread order.
func Split(n uint64, k int) []hashfind.Range {
	if k < 1 {
		return []hashfind.Range{}
	}

	ranges := make([]hashfind.Range, k)
	for i := range ranges {
		ranges[i] = Partition(n, k, i+1)
	}
	return ranges
}

// mulDiv computes floor(a*b/c) for a <= c without overflowing.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}
