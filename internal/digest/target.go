package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/lth/hashfind/internal/hashfind"
)

// Target is the digest a search tries to match.
type Target struct {
	Algorithm *Algorithm
	hex       []byte
}

// ParseTarget validates s as a hex digest of algorithm a. The comparison done
// by Matches is case-sensitive, so s should be lowercase.
func ParseTarget(a *Algorithm, s string) (Target, error) {
	if a == nil {
		return Target{}, fmt.Errorf("%w: no hash algorithm", hashfind.ErrInvalidConfiguration)
	}
	if len(s) != a.HexLen() {
		return Target{}, fmt.Errorf("%w: %s hash must be a hex string with length = %d, got %d",
			hashfind.ErrInvalidConfiguration, a.Name, a.HexLen(), len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return Target{}, fmt.Errorf("%w: hash is not a hex string: %v", hashfind.ErrInvalidConfiguration, err)
	}
	return Target{Algorithm: a, hex: []byte(s)}, nil
}

// Matches reports whether hexDigest equals the target exactly.
func (t Target) Matches(hexDigest []byte) bool {
	return bytes.Equal(hexDigest, t.hex)
}

func (t Target) String() string {
	return string(t.hex)
}
