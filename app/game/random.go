package game

import (
	"math/rand/v2"

	"github.com/josecleiton/dominosim/app/models"
)

// Randomness is the only source of chance in a match. *rand.Rand satisfies it.
type Randomness interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

func NewRandomness(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes tiles in place, uniformly.
func Shuffle(tiles []models.Domino, rnd Randomness) {
	rnd.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

func coinFlip(rnd Randomness) int {
	return rnd.IntN(2)
}
