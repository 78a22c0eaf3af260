package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

var faces = map[mines.Status]string{
	mines.Playing: ":)",
	mines.Won:     "B)",
	mines.Lost:    "X(",
}

// Draw writes a status line and the board with column and row numbers.
func Draw(w io.Writer, snap *session.Snapshot) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %dx%d  mines left: %d  %s %s\n",
		snap.Difficulty, snap.Size, snap.Size, snap.MinesLeft,
		faces[snap.Status], snap.Status,
	)

	b.WriteString("   ")
	for x := range snap.Size {
		fmt.Fprintf(&b, "%3d", x)
	}
	b.WriteByte('\n')

	for y := range snap.Size {
		fmt.Fprintf(&b, "%3d", y)
		for x := range snap.Size {
			fmt.Fprintf(&b, "%3s", snap.Board[y*snap.Size+x])
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
