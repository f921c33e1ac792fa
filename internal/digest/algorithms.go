package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/lth/hashfind/internal/hashfind"
	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm describes one digest variant.
type Algorithm struct {
	Name    string
	Aliases []string
	// Size is the digest length in bytes.
	Size    int
	new     func() hash.Hash
}

// New returns a fresh worker-local primitive.
func (a *Algorithm) New() Primitive {
	return newPrimitive(a.new())
}

// HexLen is the length of the hex-encoded digest.
func (a *Algorithm) HexLen() int {
	return 2 * a.Size
}

var (
	MD5        = &Algorithm{Name: "md5", Size: md5.Size, new: md5.New}
	SHA1       = &Algorithm{Name: "sha1", Aliases: []string{"sha-1"}, Size: sha1.Size, new: sha1.New}
	SHA256     = &Algorithm{Name: "sha256", Aliases: []string{"sha-256"}, Size: sha256.Size, new: sha256.New}
	SHA3_256   = &Algorithm{Name: "sha3-256", Size: 32, new: sha3.New256}
	BLAKE2b256 = &Algorithm{Name: "blake2b-256", Size: blake2b.Size256, new: newBlake2b256}
	BLAKE3     = &Algorithm{Name: "blake3", Size: 32, new: func() hash.Hash { return blake3.New() }}
)

var registry = map[string]*Algorithm{}

func init() {
	for _, a := range []*Algorithm{MD5, SHA1, SHA256, SHA3_256, BLAKE2b256, BLAKE3} {
		Register(a)
	}
}

// Register makes a available under its name and aliases.
func Register(a *Algorithm) {
	registry[a.Name] = a
	for _, alias := range a.Aliases {
		registry[alias] = a
	}
}

// Lookup finds an algorithm by case-insensitive name or alias.
func Lookup(name string) (*Algorithm, error) {
	if a, ok := registry[strings.ToLower(name)]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: unknown hash algorithm %q", hashfind.ErrInvalidConfiguration, name)
}

// Algorithms lists every registered algorithm once, sorted by name.
func Algorithms() []*Algorithm {
	seen := make(map[*Algorithm]bool, len(registry))
	out := make([]*Algorithm, 0, len(registry))
	for _, a := range registry {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func newBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only possible with an oversized key
		panic(err)
	}
	return h
}
