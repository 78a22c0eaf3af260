package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/mines"
)

type PositionDTO struct {
	Col int `schema:"col,required"`
	Row int `schema:"row,required"`
}

type NewGameDTO struct {
	Difficulty string `schema:"difficulty"`
}

// ParseDifficulty resolves the requested tier; an empty value yields the
// zero difficulty, which keeps the current one.
func (dto NewGameDTO) ParseDifficulty() (mines.Difficulty, error) {
	if dto.Difficulty == "" {
		return 0, nil
	}
	return mines.ParseDifficulty(dto.Difficulty)
}

type DifficultyDTO struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	MineCount int    `json:"mine_count"`
}

func NewDifficultyDTOs() []DifficultyDTO {
	ds := mines.Difficulties()
	dtos := make([]DifficultyDTO, 0, len(ds))
	for _, d := range ds {
		size, mineCount := d.Params()
		dtos = append(dtos, DifficultyDTO{
			Name:      d.String(),
			Size:      size,
			MineCount: mineCount,
		})
	}
	return dtos
}

func newQueryDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}
