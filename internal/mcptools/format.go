package mcptools

import (
	"fmt"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

func formatSnapshot(snap *session.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %s (%dx%d, %d mines)\n",
		snap.Difficulty, snap.Size, snap.Size, snap.MineCount)
	fmt.Fprintf(&b, "Mines left: %d\n", snap.MinesLeft)
	switch snap.Status {
	case mines.Won:
		b.WriteString("Status: won, every mine is flagged\n")
	case mines.Lost:
		b.WriteString("Status: lost, a mine exploded\n")
	default:
		b.WriteString("Status: playing\n")
	}

	b.WriteString("\n")
	b.WriteString(snap.String())
	return b.String()
}
