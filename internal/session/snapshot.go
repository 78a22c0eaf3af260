package session

import "github.com/vancomm/minefield/internal/mines"

type Snapshot struct {
	Difficulty mines.Difficulty `json:"difficulty"`
	Size       int              `json:"size"`
	MineCount  int              `json:"mine_count"`
	MinesLeft  int              `json:"mines_left"`
	Status     mines.Status     `json:"status"`
	Won        bool             `json:"won"`
	Lost       bool             `json:"lost"`
	Board      mines.Board      `json:"board"`
}

func NewSnapshot(g mines.Game) *Snapshot {
	return &Snapshot{
		Difficulty: g.Difficulty,
		Size:       g.Size,
		MineCount:  g.MineCount,
		MinesLeft:  g.MinesLeft(),
		Status:     g.Status(),
		Won:        g.Won,
		Lost:       g.Lost,
		Board:      g.Board(),
	}
}

func (s Snapshot) String() string {
	return s.Board.ToString(s.Size)
}
