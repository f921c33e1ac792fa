package digest

import (
	"encoding/hex"
	"hash"
)

// Primitive is a resettable digest computation. Instances are not safe for
// concurrent use; every worker owns its own.
type Primitive interface {
	Reset()
	Update(p []byte)
	Finalize()
	// HexDigest returns the lowercase hex digest, or "" before Finalize.
	HexDigest() string
	// AppendHexDigest appends the lowercase hex digest to dst.
	AppendHexDigest(dst []byte) []byte
}

type hashPrimitive struct {
	h         hash.Hash
	sum       []byte
	finalized bool
}

func newPrimitive(h hash.Hash) *hashPrimitive {
	return &hashPrimitive{
		h:   h,
		sum: make([]byte, 0, h.Size()),
	}
}

func (p *hashPrimitive) Reset() {
	p.h.Reset()
	p.sum = p.sum[:0]
	p.finalized = false
}

func (p *hashPrimitive) Update(b []byte) {
	if p.finalized {
		return
	}
	p.h.Write(b)
}

func (p *hashPrimitive) Finalize() {
	if p.finalized {
		return
	}
	p.sum = p.h.Sum(p.sum[:0])
	p.finalized = true
}

func (p *hashPrimitive) HexDigest() string {
	if !p.finalized {
		return ""
	}
	return hex.EncodeToString(p.sum)
}

func (p *hashPrimitive) AppendHexDigest(dst []byte) []byte {
	if !p.finalized {
		return dst
	}
	n := len(dst)
	need := n + hex.EncodedLen(len(p.sum))
	if cap(dst) < need {
		grown := make([]byte, n, need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:need]
	hex.Encode(dst[n:], p.sum)
	return dst
}
