package attacks

import (
	"fmt"
	"math/bits"
	"math/rand"
	"time"

	"github.com/lth/hashfind/internal/hashfind"
)

type RandomConfig struct {
	Charset   string
	MinLength int
	MaxLength int
	Seed      int64
}

// RandomOrder visits the same candidates as Incremental, but each bucket is
// walked through the permutation i -> (a*i + c) mod n with gcd(a, n) = 1.
type RandomOrder struct {
	*Incremental
	seed  int64
	steps []affine
}

type affine struct {
	a, c, n uint64
}

var _ hashfind.Space = (*RandomOrder)(nil)

func NewRandomOrder(config RandomConfig) (*RandomOrder, error) {
	inner, err := NewIncremental(IncrementalConfig{
		Charset:   config.Charset,
		MinLength: config.MinLength,
		MaxLength: config.MaxLength,
	})
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	steps := make([]affine, inner.Buckets())
	for b := range steps {
		n := inner.Size(b)
		steps[b] = affine{a: coprime(rng, n), c: rng.Uint64() % n, n: n}
	}

	return &RandomOrder{Incremental: inner, seed: seed, steps: steps}, nil
}

func (s *RandomOrder) Seed() int64 {
	return s.seed
}

func (s *RandomOrder) Fill(bucket int, index uint64, dst []byte) []byte {
	return s.Incremental.Fill(bucket, s.steps[bucket].apply(index), dst)
}

func (s *RandomOrder) String() string {
	return fmt.Sprintf("random order (seed %d), %d characters, length %d-%d",
		s.seed, len(s.codec.Alphabet()), s.minLen, s.codec.MaxLength())
}

func (p affine) apply(i uint64) uint64 {
	hi, lo := bits.Mul64(p.a, i)
	lo, carry := bits.Add64(lo, p.c, 0)
	hi += carry
	return bits.Rem64(hi, lo, p.n)
}

// coprime draws a multiplier in [1, n) sharing no factor with n.
func coprime(rng *rand.Rand, n uint64) uint64 {
	if n <= 2 {
		return 1
	}
	for {
		a := 1 + rng.Uint64()%(n-1)
		if gcd(a, n) == 1 {
			return a
		}
	}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
