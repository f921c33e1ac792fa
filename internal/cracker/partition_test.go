package cracker

import (
	"math"
	"testing"

	"github.com/lth/hashfind/internal/hashfind"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		n     uint64
		parts int
		want  []hashfind.Range
	}{
		{"10 into 2", 10, 2, []hashfind.Range{{Start: 0, Stop: 5}, {Start: 5, Stop: 10}}},
		{"10 into 3", 10, 3, []hashfind.Range{{Start: 0, Stop: 3}, {Start: 3, Stop: 6}, {Start: 6, Stop: 10}}},
		{"100 into 3", 100, 3, []hashfind.Range{{Start: 0, Stop: 33}, {Start: 33, Stop: 66}, {Start: 66, Stop: 100}}},
		{"3 into 2", 3, 2, []hashfind.Range{{Start: 0, Stop: 1}, {Start: 1, Stop: 3}}},
		{"1 into 1", 1, 1, []hashfind.Range{{Start: 0, Stop: 1}}},
		{"3 into 5", 3, 5, []hashfind.Range{{Start: 0, Stop: 0}, {Start: 0, Stop: 1}, {Start: 1, Stop: 1}, {Start: 1, Stop: 2}, {Start: 2, Stop: 3}}},
		{"empty space", 0, 3, []hashfind.Range{{Start: 0, Stop: 0}, {Start: 0, Stop: 0}, {Start: 0, Stop: 0}}},
		{"zero parts", 100, 0, []hashfind.Range{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.n, tt.parts))
		})
	}
}

func TestPartition_CoversSpaceExactly(t *testing.T) {
	for n := uint64(0); n <= 60; n++ {
		for k := 1; k <= 9; k++ {
			var next uint64
			for thread := 1; thread <= k; thread++ {
				r := Partition(n, k, thread)
				if r.Start != next {
					t.Fatalf("Partition(%d, %d, %d) starts at %d, want %d", n, k, thread, r.Start, next)
				}
				if r.Stop < r.Start {
					t.Fatalf("Partition(%d, %d, %d) = %v is decreasing", n, k, thread, r)
				}
				next = r.Stop
			}
			if next != n {
				t.Fatalf("Partition(%d, %d, ...) ends at %d, want %d", n, k, next, n)
			}
		}
	}
}

func TestPartition_HugeSpace(t *testing.T) {
	n := uint64(math.MaxUint64)
	ranges := Split(n, 7)

	assert.Equal(t, uint64(0), ranges[0].Start)
	assert.Equal(t, n, ranges[6].Stop)
	for i := 1; i < len(ranges); i++ {
		assert.Equal(t, ranges[i-1].Stop, ranges[i].Start)
	}
	assert.Equal(t, n/7, ranges[0].Len())
}

func TestPartition_OutOfRangeThread(t *testing.T) {
	assert.True(t, Partition(10, 2, 0).Empty())
	assert.True(t, Partition(10, 2, 3).Empty())
	assert.True(t, Partition(10, 0, 1).Empty())
}
