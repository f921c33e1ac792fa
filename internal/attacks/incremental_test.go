package attacks

import (
	"math"
	"testing"

	"github.com/lth/hashfind/internal/hashfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s hashfind.Space) []string {
	t.Helper()

	var got []string
	var buf []byte
	for b := 0; b < s.Buckets(); b++ {
		for i := uint64(0); i < s.Size(b); i++ {
			buf = s.Fill(b, i, buf)
			got = append(got, string(buf))
		}
	}
	return got
}

func TestIncremental_Order(t *testing.T) {
	s, err := NewIncremental(IncrementalConfig{Charset: "ab", MinLength: 1, MaxLength: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Buckets())
	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, collect(t, s))
}

func TestIncremental_Buckets(t *testing.T) {
	s, err := NewIncremental(IncrementalConfig{Charset: "fhlvz79", MinLength: 3, MaxLength: 5})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Buckets())
	assert.Equal(t, uint64(343), s.Size(0))
	assert.Equal(t, uint64(2401), s.Size(1))
	assert.Equal(t, uint64(16807), s.Size(2))
	assert.Equal(t, 4, s.Length(1))
	assert.Equal(t, uint64(343+2401+16807), hashfind.TotalSize(s))
}

func TestNewIncremental_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		config IncrementalConfig
	}{
		{"empty charset", IncrementalConfig{Charset: "", MinLength: 1, MaxLength: 2}},
		{"zero min length", IncrementalConfig{Charset: "ab", MinLength: 0, MaxLength: 2}},
		{"negative max length", IncrementalConfig{Charset: "ab", MinLength: 1, MaxLength: -1}},
		{"min above max", IncrementalConfig{Charset: "ab", MinLength: 3, MaxLength: 2}},
		{"duplicate character", IncrementalConfig{Charset: "aba", MinLength: 1, MaxLength: 2}},
		{"overflowing space", IncrementalConfig{Charset: CharsetLowerNum, MinLength: 1, MaxLength: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIncremental(tt.config)
			assert.ErrorIs(t, err, hashfind.ErrInvalidConfiguration)
		})
	}
}

func TestEstimateCombinations(t *testing.T) {
	tests := []struct {
		config   IncrementalConfig
		expected uint64
	}{
		{IncrementalConfig{Charset: "ab", MinLength: 1, MaxLength: 1}, 2},
		{IncrementalConfig{Charset: "ab", MinLength: 1, MaxLength: 2}, 6},
		{IncrementalConfig{Charset: "abc", MinLength: 2, MaxLength: 2}, 9},
		{IncrementalConfig{Charset: "0123456789", MinLength: 4, MaxLength: 4}, 10000},
		{IncrementalConfig{Charset: CharsetLowerNum, MinLength: 8, MaxLength: 8}, 2821109907456},
		{IncrementalConfig{Charset: CharsetAll, MinLength: 1, MaxLength: 20}, math.MaxUint64},
	}

	for _, tt := range tests {
		result := EstimateCombinations(tt.config)
		if result != tt.expected {
			t.Errorf("EstimateCombinations(%v) = %d, want %d", tt.config, result, tt.expected)
		}
	}
}

func TestResolveCharset(t *testing.T) {
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz0123456789", ResolveCharset("lowernum"))
	assert.Equal(t, CharsetDigits, ResolveCharset("numbers"))
	assert.Equal(t, "fhlvz79", ResolveCharset("fhlvz79"))
}

func BenchmarkIncrementalFill(b *testing.B) {
	s, err := NewIncremental(IncrementalConfig{Charset: CharsetAlphaNum, MinLength: 8, MaxLength: 8})
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 0, 8)
	size := s.Size(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = s.Fill(0, uint64(i)%size, buf)
	}
}
