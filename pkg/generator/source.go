package generator

import (
	"math/rand"
	"time"
)

// Source is the randomness a Generator draws from. *math/rand.Rand
// satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func newTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}
