package console

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

func newTestConsole(t *testing.T) (*Console, *session.Session, *test.Hook) {
	t.Helper()
	s, err := session.New(
		mines.Easy,
		rand.New(rand.NewPCG(1, 2)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	if err != nil {
		t.Fatal(err)
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(s, logger), s, hook
}

func TestRunAppliesCommands(t *testing.T) {
	c, s, hook := newTestConsole(t)

	var out strings.Builder
	in := strings.NewReader("f 0 0\nbogus\n\nn normal\nq\nf 1 1\n")
	if err := c.Run(in, &out); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.Difficulty != mines.Normal {
		t.Errorf("difficulty = %v, want normal", snap.Difficulty)
	}
	if snap.MinesLeft != 40 {
		t.Errorf("mines left = %d, commands after quit were applied", snap.MinesLeft)
	}
	if !strings.Contains(out.String(), "error: unknown command") {
		t.Errorf("output lacks the rejected command:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "mines left: 9") {
		t.Errorf("output lacks the flagged board:\n%s", out.String())
	}

	var applied, rejected, quit int
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "applied command":
			applied++
		case "rejected command":
			rejected++
		case "player quit":
			quit++
		}
	}
	if applied != 2 || rejected != 1 || quit != 1 {
		t.Errorf("log entries: applied=%d rejected=%d quit=%d", applied, rejected, quit)
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	c, _, _ := newTestConsole(t)
	var out strings.Builder
	if err := c.Run(strings.NewReader("g"), &out); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "mines left") != 2 {
		t.Errorf("expected the board twice:\n%s", out.String())
	}
}

func TestDraw(t *testing.T) {
	snap := &session.Snapshot{
		Difficulty: mines.Easy,
		Size:       2,
		MinesLeft:  1,
		Status:     mines.Lost,
		Board:      mines.Board{mines.ExplodedMine, 1, mines.Flagged, mines.Unknown},
	}

	var out strings.Builder
	if err := Draw(&out, snap); err != nil {
		t.Fatal(err)
	}

	want := "easy 2x2  mines left: 1  X( lost\n" +
		"     0  1\n" +
		"  0  X  1\n" +
		"  1  F  .\n"
	if out.String() != want {
		t.Errorf("Draw =\n%q\nwant\n%q", out.String(), want)
	}
}
