package attacks

import (
	"math/rand"
	"testing"

	"github.com/lth/hashfind/internal/hashfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_Decode(t *testing.T) {
	c, err := NewCodec("abc", 3)
	require.NoError(t, err)

	tests := []struct {
		index  uint64
		length int
		want   string
	}{
		{0, 1, "a"},
		{2, 1, "c"},
		{0, 2, "aa"},
		{1, 2, "ab"},
		{3, 2, "ba"},
		{8, 2, "cc"},
		{0, 3, "aaa"},
		{5, 3, "abc"},
		{26, 3, "ccc"},
		{0, 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Decode(tt.index, tt.length), "index %d length %d", tt.index, tt.length)
	}
}

func TestCodec_RoundTripExhaustive(t *testing.T) {
	c, err := NewCodec("fhlvz79", 4)
	require.NoError(t, err)

	for length := 1; length <= 4; length++ {
		seen := make(map[string]bool)
		for i := uint64(0); i < c.Size(length); i++ {
			word := c.Decode(i, length)
			require.Len(t, word, length)
			require.False(t, seen[word], "duplicate word %q", word)
			seen[word] = true

			back, err := c.Encode(word)
			require.NoError(t, err)
			require.Equal(t, i, back)
		}
		assert.Len(t, seen, int(c.Size(length)))
	}
}

func TestCodec_RoundTripLargeIndices(t *testing.T) {
	c, err := NewCodec(CharsetLowerNum, 12)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	size := c.Size(12)
	for n := 0; n < 1000; n++ {
		i := rng.Uint64() % size
		back, err := c.Encode(c.Decode(i, 12))
		require.NoError(t, err)
		require.Equal(t, i, back)
	}

	back, err := c.Encode(c.Decode(size-1, 12))
	require.NoError(t, err)
	assert.Equal(t, size-1, back)
	assert.Equal(t, "999999999999", c.Decode(size-1, 12))
}

func TestCodec_Encode(t *testing.T) {
	c, err := NewCodec("fhlvz79", 4)
	require.NoError(t, err)

	i, err := c.Encode("hvl7")
	require.NoError(t, err)
	// h=1 v=3 l=2 7=5 in base 7
	assert.Equal(t, uint64(1*343+3*49+2*7+5), i)

	_, err = c.Encode("hvla")
	assert.Error(t, err)

	_, err = c.Encode("hvl7h")
	assert.Error(t, err)
}

func TestNewCodec_InvalidConfiguration(t *testing.T) {
	_, err := NewCodec("", 3)
	assert.ErrorIs(t, err, hashfind.ErrInvalidConfiguration)

	_, err = NewCodec("ab", 0)
	assert.ErrorIs(t, err, hashfind.ErrInvalidConfiguration)

	_, err = NewCodec("01", 64)
	assert.ErrorIs(t, err, hashfind.ErrInvalidConfiguration)

	c, err := NewCodec("01", 63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, c.Size(63))
}
