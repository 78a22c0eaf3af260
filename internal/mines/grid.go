package mines

// Grid maps every cell id of a square board to its cell. Cells are held by
// value, so a cloned grid shares nothing with the original.
type Grid map[CellID]Cell

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for id, cell := range g {
		c[id] = cell
	}
	return c
}

func (g Grid) Mines() (count int) {
	for _, c := range g {
		if c.Mine {
			count++
		}
	}
	return
}

func (g Grid) Marks() (count int) {
	for _, c := range g {
		if c.Marked {
			count++
		}
	}
	return
}

// Neighbors returns the ids of the up to 8 cells surrounding id that exist
// in g. The order is fixed: columns left to right, rows top to bottom
// within each column.
func Neighbors(id CellID, g Grid) []CellID {
	if _, ok := g[id]; !ok {
		return nil
	}
	x, y, err := Decode(id)
	if err != nil {
		return nil
	}
	ret := make([]CellID, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Encode(x+dx, y+dy)
			if _, ok := g[n]; ok {
				ret = append(ret, n)
			}
		}
	}
	return ret
}
