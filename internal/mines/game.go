package mines

import (
	"log/slog"
)

var Log *slog.Logger = slog.Default()

// Game is one round on one field. Its methods return an updated copy and
// leave the receiver untouched, so older values stay valid snapshots.
type Game struct {
	Difficulty Difficulty
	Size       int
	MineCount  int
	Grid       Grid
	Won, Lost  bool
	Exploded   CellID /* the mine that ended the game, if any */
}

func NewGame(d Difficulty, r Rand) (Game, error) {
	if !d.Valid() {
		return Game{}, ErrUnknownDifficulty
	}
	size, requested := d.Params()
	mineCount := min(requested, MaxMines(size))

	grid := Generate(size, mineCount, r)
	if placed := grid.Mines(); placed < mineCount {
		Log.Warn("placed fewer mines than requested",
			slog.String("difficulty", d.String()),
			slog.Int("requested", mineCount),
			slog.Int("placed", placed),
		)
	}

	return Game{
		Difficulty: d,
		Size:       size,
		MineCount:  mineCount,
		Grid:       grid,
	}, nil
}

// Reset discards the field and deals a fresh one of the given tier.
func (g Game) Reset(d Difficulty, r Rand) (Game, error) {
	return NewGame(d, r)
}

func (g Game) Over() bool {
	return g.Won || g.Lost
}

// Reveal opens a covered, unmarked cell and settles the outcome.
func (g Game) Reveal(id CellID) Game {
	if g.Over() {
		return g
	}
	cell, ok := g.Grid[id]
	if !ok || cell.Revealed || cell.Marked {
		return g
	}

	g.Grid = Reveal(id, g.Grid)
	g.Lost = IsLost(id, g.Grid)
	if g.Lost {
		g.Exploded = id
		/* If the player has already lost, don't let them win as well. */
		g.Won = false
	} else {
		g.Won = IsWon(g.Grid)
	}
	return g
}

// Flag toggles the mark on a covered cell. Flagging never loses a game,
// but marking the last mine can win it.
func (g Game) Flag(id CellID) Game {
	if g.Over() {
		return g
	}
	cell, ok := g.Grid[id]
	if !ok || cell.Revealed {
		return g
	}

	g.Grid = ToggleFlag(id, g.Grid)
	g.Won = IsWon(g.Grid)
	return g
}

func (g Game) InBounds(col, row int) bool {
	return 0 <= col && col < g.Size && 0 <= row && row < g.Size
}
