package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is what a player may know about a cell.
type CellState int8

const (
	Unknown      CellState = -2
	Flagged      CellState = -1
	Mine         CellState = 64
	FlaggedMine  CellState = 65
	ExplodedMine CellState = 66
	/*
	 * 0 to 8 mean the cell is open and has that many mined
	 * neighbours. Mine states only appear once the field has
	 * detonated: 64 is a mine nobody marked, 65 a mine the player
	 * had marked, 66 the one the player stepped on.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "."
	case s == Flagged:
		return "F"
	case s == 0:
		return " "
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	case s == Mine:
		return "*"
	case s == FlaggedMine:
		return "#"
	case s == ExplodedMine:
		return "X"
	default:
		return "!"
	}
}

// Board is the row-major player view of a field.
type Board []CellState

func (b Board) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	for y := range len(b) / width {
		for x := range width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b[y*width+x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g Game) stateOf(c Cell) CellState {
	switch {
	case c.Revealed && c.Mine:
		if c.ID() == g.Exploded {
			return ExplodedMine
		}
		if c.Marked {
			return FlaggedMine
		}
		return Mine
	case c.Revealed:
		return CellState(c.Adjacent)
	case c.Marked:
		return Flagged
	default:
		return Unknown
	}
}

// Board projects the field onto what the player can see. Covered cells
// never give away whether they are mined.
func (g Game) Board() Board {
	b := make(Board, g.Size*g.Size)
	for i := range b {
		b[i] = Unknown
	}
	for _, c := range g.Grid {
		if g.InBounds(c.Col, c.Row) {
			b[c.Row*g.Size+c.Col] = g.stateOf(c)
		}
	}
	return b
}

// MinesLeft is the number of mines on the field minus the marks placed.
// It goes negative when the player over-marks.
func (g Game) MinesLeft() int {
	return g.Grid.Mines() - g.Grid.Marks()
}

type Status uint8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (g Game) Status() Status {
	switch {
	case g.Lost:
		return Lost
	case g.Won:
		return Won
	default:
		return Playing
	}
}
