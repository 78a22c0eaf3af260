package mines

// Rand is the uniform index source used to place mines. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// MaxMines is the most mines a size×size field may hold: one cell in nine
// stays free, so a mine can always find an unmined neighbour.
func MaxMines(size int) int {
	return size * size * 8 / 9
}

// Generate builds a size×size field holding at most mineCount mines.
func Generate(size, mineCount int, r Rand) Grid {
	if size <= 0 {
		return Grid{}
	}

	grid := make(Grid, size*size)
	candidates := make([]CellID, 0, size*size)

	/*
	 * Lay out blank cells, writing down every one of them as a
	 * possible mine location in row-major order.
	 */
	for y := range size {
		for x := range size {
			id := Encode(x, y)
			grid[id] = Cell{Col: x, Row: y}
			candidates = append(candidates, id)
		}
	}

	mineCount = min(mineCount, MaxMines(size))

	/*
	 * Now pick cells off the list at random. A pick only becomes a
	 * mine if some neighbour is still free; either way it never
	 * comes up again.
	 */
	k := len(candidates)
	for placed := 0; placed < mineCount && k > 0; {
		i := r.IntN(k)
		id := candidates[i]
		k--
		candidates[i] = candidates[k]

		neighbors := Neighbors(id, grid)
		free := false
		for _, n := range neighbors {
			if !grid[n].Mine {
				free = true
				break
			}
		}
		if !free {
			continue
		}

		cell := grid[id]
		cell.Mine = true
		grid[id] = cell
		for _, n := range neighbors {
			nc := grid[n]
			nc.Adjacent++
			grid[n] = nc
		}
		placed++
	}

	return grid
}
