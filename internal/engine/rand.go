package engine

import (
	mathrand "math/rand"

	"github.com/google/uuid"
)

// Rand is the injectable entropy source behind every random pick in the
// engine (template selection, set shuffling, phrasing choice). Satisfied by
// *math/rand.Rand, so tests seed it for reproducible scenarios.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSeededRand returns a deterministic Rand for the given seed.
func NewSeededRand(seed int64) Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

// IDGenerator produces question ids. Injected so tests can use a fixed
// monotonic sequence instead of real UUIDs.
type IDGenerator func() uuid.UUID

// RandomIDs returns the production IDGenerator backed by random UUIDs.
func RandomIDs() IDGenerator {
	return uuid.New
}

// SequentialIDs returns an IDGenerator that yields deterministic ids,
// intended for tests.
func SequentialIDs() IDGenerator {
	var n uint32
	return func() uuid.UUID {
		n++
		var id uuid.UUID
		id[0] = byte(n >> 24)
		id[1] = byte(n >> 16)
		id[2] = byte(n >> 8)
		id[3] = byte(n)
		return id
	}
}
