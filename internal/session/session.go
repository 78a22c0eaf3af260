package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/mines"
)

// ErrOutOfBounds is returned for coordinates outside the current field.
var ErrOutOfBounds = fmt.Errorf("invalid cell position")

// Session is the single owner of the running game. Every action goes
// through its mutex, so moves from different clients apply one at a time.
type Session struct {
	mu     sync.Mutex
	game   mines.Game
	rnd    mines.Rand
	logger *slog.Logger
}

func New(d mines.Difficulty, rnd mines.Rand, logger *slog.Logger) (*Session, error) {
	game, err := mines.NewGame(d, rnd)
	if err != nil {
		return nil, err
	}
	logger.Info("new game", slog.String("difficulty", d.String()))
	return &Session{game: game, rnd: rnd, logger: logger}, nil
}

// Game returns the current game value. It is safe to keep: later moves
// produce new values rather than changing this one.
func (s *Session) Game() mines.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

func (s *Session) Snapshot() *Snapshot {
	return NewSnapshot(s.Game())
}

func (s *Session) Reveal(col, row int) (*Snapshot, error) {
	return s.move("reveal", col, row, mines.Game.Reveal)
}

func (s *Session) Flag(col, row int) (*Snapshot, error) {
	return s.move("flag", col, row, mines.Game.Flag)
}

func (s *Session) move(
	name string, col, row int, apply func(mines.Game, mines.CellID) mines.Game,
) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.game.InBounds(col, row) {
		return nil, fmt.Errorf("%w: %d:%d", ErrOutOfBounds, col, row)
	}

	prev := s.game
	s.game = apply(prev, mines.Encode(col, row))

	s.logger.Debug(name, slog.Int("col", col), slog.Int("row", row))
	if !prev.Over() && s.game.Over() {
		s.logger.Info("game over",
			slog.String("difficulty", s.game.Difficulty.String()),
			slog.String("status", s.game.Status().String()),
		)
	}
	return NewSnapshot(s.game), nil
}

// Reset deals a new game. The zero difficulty keeps the current tier.
func (s *Session) Reset(d mines.Difficulty) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d == 0 {
		d = s.game.Difficulty
	}
	game, err := s.game.Reset(d, s.rnd)
	if err != nil {
		return nil, err
	}
	s.game = game
	s.logger.Info("new game", slog.String("difficulty", d.String()))
	return NewSnapshot(s.game), nil
}

func (s *Session) Execute(c command.Command) (*Snapshot, error) {
	switch c.Verb {
	case command.Get:
		return s.Snapshot(), nil
	case command.Open:
		return s.Reveal(c.Col, c.Row)
	case command.Flag:
		return s.Flag(c.Col, c.Row)
	case command.NewGame:
		var d mines.Difficulty
		if c.Difficulty != "" {
			var err error
			if d, err = mines.ParseDifficulty(c.Difficulty); err != nil {
				return nil, err
			}
		}
		return s.Reset(d)
	}
	return nil, fmt.Errorf("%w %q", command.ErrUnknownCommand, c.Verb)
}
