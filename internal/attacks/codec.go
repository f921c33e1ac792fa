package attacks

import (
	"fmt"
	"math/bits"

	"github.com/lth/hashfind/internal/hashfind"
)

// Codec maps a linear index to a fixed-length string over an alphabet and
// back. The first character is the most significant base-len(alphabet) digit.
type Codec struct {
	alphabet []byte
	base     uint64
	maxLen   int

	// powers[i] = base^i
	powers []uint64
	// digits[c] = position of c in alphabet, or -1
	digits [256]int16
}

func NewCodec(alphabet string, maxLength int) (*Codec, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: alphabet must not be empty", hashfind.ErrInvalidConfiguration)
	}
	if maxLength <= 0 {
		return nil, fmt.Errorf("%w: max length must be greater than 0", hashfind.ErrInvalidConfiguration)
	}

	c := &Codec{
		alphabet: []byte(alphabet),
		base:     uint64(len(alphabet)),
		maxLen:   maxLength,
		powers:   make([]uint64, maxLength+1),
	}

	for i := range c.digits {
		c.digits[i] = -1
	}
	for i, ch := range c.alphabet {
		if c.digits[ch] >= 0 {
			return nil, fmt.Errorf("%w: duplicate character %q in alphabet", hashfind.ErrInvalidConfiguration, ch)
		}
		c.digits[ch] = int16(i)
	}

	c.powers[0] = 1
	for i := 1; i <= maxLength; i++ {
		hi, lo := bits.Mul64(c.powers[i-1], c.base)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d^%d combinations do not fit in 64 bits",
				hashfind.ErrInvalidConfiguration, c.base, maxLength)
		}
		c.powers[i] = lo
	}

	return c, nil
}

func (c *Codec) Alphabet() string {
	return string(c.alphabet)
}

func (c *Codec) MaxLength() int {
	return c.maxLen
}

// Size returns the number of strings of the given length.
func (c *Codec) Size(length int) uint64 {
	if length < 0 || length > c.maxLen {
		return 0
	}
	return c.powers[length]
}

// Decode returns the string of the given length at index.
func (c *Codec) Decode(index uint64, length int) string {
	return string(c.AppendDecode(nil, index, length))
}

// AppendDecode appends the string at index to dst. index must be below
// Size(length).
func (c *Codec) AppendDecode(dst []byte, index uint64, length int) []byte {
	for i := length - 1; i >= 0; i-- {
		p := c.powers[i]
		dst = append(dst, c.alphabet[index/p])
		index %= p
	}
	return dst
}

// Encode is the inverse of Decode.
func (c *Codec) Encode(s string) (uint64, error) {
	if len(s) > c.maxLen {
		return 0, fmt.Errorf("%q is longer than %d", s, c.maxLen)
	}

	var index uint64
	for i := 0; i < len(s); i++ {
		d := c.digits[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("character %q is not in the alphabet", s[i])
		}
		index = index*c.base + uint64(d)
	}
	return index, nil
}
