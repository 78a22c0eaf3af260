package mines

// Reveal opens the cell at id and returns the resulting grid. Landing on a
// mine detonates every mine on the field; opening a cell with no mined
// neighbours cascades through the surrounding empty area. g itself is
// never written to.
func Reveal(id CellID, g Grid) Grid {
	cell, ok := g[id]
	if !ok || cell.Revealed {
		return g
	}

	grid := g.Clone()

	if cell.Mine {
		for i, c := range grid {
			if c.Mine {
				c.Revealed = true
				grid[i] = c
			}
		}
		return grid
	}

	/*
	 * Otherwise work through a stack of pending cells. Neighbours are
	 * marked revealed as they are pushed, so none is pushed twice.
	 */
	pending := []CellID{id}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		c := grid[cur]
		c.Revealed = true
		grid[cur] = c

		if c.Adjacent != 0 {
			continue
		}
		for _, n := range Neighbors(cur, grid) {
			nc := grid[n]
			if nc.Revealed || nc.Mine {
				continue
			}
			nc.Revealed = true
			grid[n] = nc
			pending = append(pending, n)
		}
	}

	return grid
}

// ToggleFlag flips the mark on the cell at id. It does not look at whether
// the cell is revealed; [Game.Flag] does.
func ToggleFlag(id CellID, g Grid) Grid {
	cell, ok := g[id]
	if !ok {
		return g
	}
	grid := g.Clone()
	cell.Marked = !cell.Marked
	grid[id] = cell
	return grid
}

// IsLost reports whether the cell that was just revealed is a mine.
func IsLost(id CellID, g Grid) bool {
	return g[id].Mine
}

// IsWon reports whether every covered cell is a mine and carries a mark.
func IsWon(g Grid) bool {
	for _, c := range g {
		if c.Revealed {
			continue
		}
		if !c.Mine || !c.Marked {
			return false
		}
	}
	return true
}
