package session

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/mines"
)

func newTestSession(t *testing.T, d mines.Difficulty) *Session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(d, rand.New(rand.NewPCG(1, 2)), logger)
	require.NoError(t, err)
	return s
}

func findCell(g mines.Game, mine bool) (col, row int) {
	for _, c := range g.Grid {
		if c.Mine == mine && !c.Revealed {
			return c.Col, c.Row
		}
	}
	panic("no such cell")
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	_, err := New(0, rand.New(rand.NewPCG(1, 2)), slog.Default())
	assert.ErrorIs(t, err, mines.ErrUnknownDifficulty)
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t, mines.Easy)
	snap := s.Snapshot()

	assert.Equal(t, mines.Easy, snap.Difficulty)
	assert.Equal(t, 8, snap.Size)
	assert.Equal(t, 10, snap.MineCount)
	assert.Equal(t, 10, snap.MinesLeft)
	assert.Equal(t, mines.Playing, snap.Status)
	assert.Len(t, snap.Board, 64)
	for _, c := range snap.Board {
		assert.Equal(t, mines.Unknown, c)
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	s := newTestSession(t, mines.Easy)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		_, err := s.Reveal(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = s.Flag(p[0], p[1])
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestRevealMineEndsGame(t *testing.T) {
	s := newTestSession(t, mines.Easy)
	col, row := findCell(s.Game(), true)

	snap, err := s.Reveal(col, row)
	require.NoError(t, err)
	assert.True(t, snap.Lost)
	assert.Equal(t, mines.Lost, snap.Status)
	assert.Equal(t, mines.ExplodedMine, snap.Board[row*snap.Size+col])

	safeCol, safeRow := findCell(s.Game(), false)
	after, err := s.Reveal(safeCol, safeRow)
	require.NoError(t, err)
	assert.Equal(t, snap.Board, after.Board, "moves after a loss must be ignored")
}

func TestFlagCountsDown(t *testing.T) {
	s := newTestSession(t, mines.Easy)

	snap, err := s.Flag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, snap.MinesLeft)
	assert.Equal(t, mines.Flagged, snap.Board[0])

	snap, err = s.Flag(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, snap.MinesLeft)
}

func TestGameSnapshotsAreStable(t *testing.T) {
	s := newTestSession(t, mines.Easy)
	before := s.Game()

	_, err := s.Flag(3, 3)
	require.NoError(t, err)

	assert.False(t, before.Grid[mines.Encode(3, 3)].Marked)
	assert.True(t, s.Game().Grid[mines.Encode(3, 3)].Marked)
}

func TestExecute(t *testing.T) {
	s := newTestSession(t, mines.Easy)

	snap, err := s.Execute(command.Command{Verb: command.NewGame, Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, 24, snap.Size)
	assert.Equal(t, 99, snap.MineCount)

	snap, err = s.Execute(command.Command{Verb: command.NewGame})
	require.NoError(t, err)
	assert.Equal(t, mines.Hard, snap.Difficulty, "bare new game keeps the tier")

	_, err = s.Execute(command.Command{Verb: command.NewGame, Difficulty: "expert"})
	assert.ErrorIs(t, err, mines.ErrUnknownDifficulty)
	assert.Equal(t, mines.Hard, s.Snapshot().Difficulty)

	snap, err = s.Execute(command.Command{Verb: command.Flag, Col: 1, Row: 1})
	require.NoError(t, err)
	assert.Equal(t, mines.Flagged, snap.Board[1*24+1])

	snap, err = s.Execute(command.Command{Verb: command.Get})
	require.NoError(t, err)
	assert.Equal(t, 98, snap.MinesLeft)

	_, err = s.Execute(command.Command{Verb: "x"})
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestConcurrentMoves(t *testing.T) {
	s := newTestSession(t, mines.Normal)

	var wg sync.WaitGroup
	for col := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range 16 {
				_, _ = s.Flag(col, row)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 40-256, s.Snapshot().MinesLeft)
}
