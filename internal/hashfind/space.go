package hashfind

import "math"

// Space is an enumerable set of candidates split into buckets; every bucket
// is an independent linear index space [0, Size(bucket)).
type Space interface {
	Buckets() int
	Size(bucket int) uint64
	// Fill appends the candidate at index of bucket to dst[:0] and returns it.
	Fill(bucket int, index uint64, dst []byte) []byte
	String() string
}

// TotalSize returns the number of candidates in s, saturating at math.MaxUint64.
func TotalSize(s Space) uint64 {
	var total uint64
	for b := 0; b < s.Buckets(); b++ {
		size := s.Size(b)
		if total > math.MaxUint64-size {
			return math.MaxUint64
		}
		total += size
	}
	return total
}
