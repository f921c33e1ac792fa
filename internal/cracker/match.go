package cracker

import "sync/atomic"

// match is a claim-once cell: the first Claim wins, later ones are dropped.
type match struct {
	value atomic.Pointer[string]
}

func (m *match) Claim(candidate string) bool {
	return m.value.CompareAndSwap(nil, &candidate)
}

func (m *match) Load() (string, bool) {
	v := m.value.Load()
	if v == nil {
		return "", false
	}
	return *v, true
}
