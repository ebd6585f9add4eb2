package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Intn    func(n int) int
	Bool    func() bool
	Shuffle func(n int, swap func(i, j int))
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Intn:    random.Intn,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Shuffle: random.Shuffle,
	}
}
