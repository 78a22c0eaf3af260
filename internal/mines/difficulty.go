package mines

import (
	"fmt"
	"strings"
)

type Difficulty uint8

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
	lastDifficulty
)

type params struct {
	size, mineCount int
}

var difficultyParams = map[Difficulty]params{
	Easy:   {size: 8, mineCount: 10},
	Normal: {size: 16, mineCount: 40},
	Hard:   {size: 24, mineCount: 99},
}

// Difficulties lists every tier, easiest first.
func Difficulties() []Difficulty {
	ds := make([]Difficulty, 0, len(difficultyParams))
	for d := Easy; d < lastDifficulty; d++ {
		ds = append(ds, d)
	}
	return ds
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyParams[d]
	return ok
}

// Params returns the board side and the requested mine count of the tier.
func (d Difficulty) Params() (size, mineCount int) {
	p := difficultyParams[d]
	return p.size, p.mineCount
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(d))
	}
}

// [Difficulty] implements [encoding.TextMarshaler]
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
