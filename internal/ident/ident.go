// Package ident mints collision-resistant event identifiers.
package ident

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	v4Template = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	hexDigits  = "0123456789abcdef"
)

// Generator produces unique event ids. The zero-configured generator from
// New delegates to the platform UUID facility; NewFallback substitutes a
// pseudo-random v4-shaped generator for environments without one.
type Generator struct {
	// rng, when non-nil, selects the fallback path.
	rng *rand.Rand
}

// New returns a generator backed by random (version 4) UUIDs.
func New() *Generator {
	return &Generator{}
}

// NewFallback returns a generator that builds UUID-v4-shaped strings from a
// non-cryptographic random source. Collision probability is only as good as
// the seed and the underlying PRNG; do not use where security-sensitive
// uniqueness is required.
func NewFallback(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewID returns a fresh 36-character identifier.
func (g *Generator) NewID() string {
	if g.rng != nil {
		return fallbackID(g.rng)
	}
	return uuid.NewString()
}

// fallbackID fills the v4 template: each x becomes a random hex digit, the
// version nibble is fixed to 4 and the variant nibble (y) is one of 8, 9,
// a or b per the UUID v4 layout.
func fallbackID(rng *rand.Rand) string {
	b := []byte(v4Template)
	for i := range b {
		switch b[i] {
		case 'x':
			b[i] = hexDigits[rng.Intn(16)]
		case 'y':
			b[i] = hexDigits[8+rng.Intn(4)]
		}
	}
	return string(b)
}
