package quiz

import (
	"math/rand"
	"time"
)

// RandSource supplies random indexes for shuffling. *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewRandSource returns a time-seeded source.
func NewRandSource() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle returns a uniformly shuffled copy of in (Durstenfeld variant of Fisher-Yates).
// The input slice is never modified.
func Shuffle[T any](in []T, src RandSource) []T {
	out := append([]T(nil), in...)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
