package quiz

import (
	"math/rand/v2"
)

//go:generate mockgen -source=random.go -destination=../mocks/quiz/mock_random.go -package=mock_quiz RandomSource

// RandomSource is used for every random draw made while building a question.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a reproducible source for a non-zero seed,
// and a randomly seeded one for zero.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// shuffle is a Fisher-Yates shuffle drawing from rng
func shuffle(rng RandomSource, letters []string) {
	for i := len(letters) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
}
