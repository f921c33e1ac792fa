package attacks

import (
	"fmt"
	"math"

	"github.com/lth/hashfind/internal/hashfind"
)

type IncrementalConfig struct {
	Charset   string
	MinLength int
	MaxLength int
}

var (
	CharsetLower    = "abcdefghijklmnopqrstuvwxyz"
	CharsetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits   = "0123456789"
	CharsetSpecial  = "!@#$%^&*()_+-=[]{}|;':\",./<>?"
	CharsetAlpha    = CharsetLower + CharsetUpper
	CharsetAlphaNum = CharsetAlpha + CharsetDigits
	CharsetLowerNum = CharsetLower + CharsetDigits
	CharsetAll      = CharsetAlphaNum + CharsetSpecial
)

// ResolveCharset expands a preset name; anything else is taken literally.
func ResolveCharset(cs string) string {
	switch cs {
	case "lower":
		return CharsetLower
	case "upper":
		return CharsetUpper
	case "digits", "numbers":
		return CharsetDigits
	case "alpha":
		return CharsetAlpha
	case "alnum", "alphanumeric":
		return CharsetAlphaNum
	case "lowernum":
		return CharsetLowerNum
	case "all", "full":
		return CharsetAll
	case "special":
		return CharsetSpecial
	default:
		return cs
	}
}

// Incremental is every string over a charset with a length in
// [MinLength, MaxLength]. Bucket b holds the strings of length MinLength+b.
type Incremental struct {
	codec  *Codec
	minLen int
}

var _ hashfind.Space = (*Incremental)(nil)

func NewIncremental(config IncrementalConfig) (*Incremental, error) {
	if config.MinLength <= 0 {
		return nil, fmt.Errorf("%w: min length must be greater than 0", hashfind.ErrInvalidConfiguration)
	}
	if config.MaxLength < config.MinLength {
		return nil, fmt.Errorf("%w: min length %d is greater than max length %d",
			hashfind.ErrInvalidConfiguration, config.MinLength, config.MaxLength)
	}

	codec, err := NewCodec(config.Charset, config.MaxLength)
	if err != nil {
		return nil, err
	}

	return &Incremental{codec: codec, minLen: config.MinLength}, nil
}

// Length returns the candidate length of a bucket.
func (s *Incremental) Length(bucket int) int {
	return s.minLen + bucket
}

func (s *Incremental) Buckets() int {
	return s.codec.MaxLength() - s.minLen + 1
}

func (s *Incremental) Size(bucket int) uint64 {
	return s.codec.Size(s.Length(bucket))
}

func (s *Incremental) Fill(bucket int, index uint64, dst []byte) []byte {
	return s.codec.AppendDecode(dst[:0], index, s.Length(bucket))
}

func (s *Incremental) String() string {
	return fmt.Sprintf("incremental, %d characters, length %d-%d", len(s.codec.Alphabet()), s.minLen, s.codec.MaxLength())
}

// EstimateCombinations counts the candidates of config, saturating at
// math.MaxUint64.
func EstimateCombinations(config IncrementalConfig) uint64 {
	var total uint64
	base := uint64(len(config.Charset))

	for length := config.MinLength; length <= config.MaxLength; length++ {
		combinations := uint64(1)
		for i := 0; i < length; i++ {
			if base != 0 && combinations > math.MaxUint64/base {
				return math.MaxUint64
			}
			combinations *= base
		}
		if total > math.MaxUint64-combinations {
			return math.MaxUint64
		}
		total += combinations
	}

	return total
}
