package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/vancomm/minefield/internal/mines"
)

type Game struct {
	Difficulty mines.Difficulty
	Seed       *uint64
}

func NewGame() (*Game, error) {
	cfg := &Game{Difficulty: mines.Easy}

	if s, ok := os.LookupEnv("MINEFIELD_DIFFICULTY"); ok && s != "" {
		d, err := mines.ParseDifficulty(s)
		if err != nil {
			return nil, fmt.Errorf("MINEFIELD_DIFFICULTY: %w", err)
		}
		cfg.Difficulty = d
	}

	if s, ok := os.LookupEnv("MINEFIELD_SEED"); ok && s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINEFIELD_SEED: %w", err)
		}
		cfg.Seed = &seed
	}

	return cfg, nil
}

// Rand returns the mine placement source: fixed when a seed is configured,
// otherwise seeded from the runtime's random hash keys.
func (g Game) Rand() *rand.Rand {
	if g.Seed != nil {
		return rand.New(rand.NewPCG(*g.Seed, *g.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
