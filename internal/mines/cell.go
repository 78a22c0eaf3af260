package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellID is the canonical "col,row" key of a cell within a [Grid].
type CellID string

func Encode(col, row int) CellID {
	return CellID(strconv.Itoa(col) + "," + strconv.Itoa(row))
}

func Decode(id CellID) (col, row int, err error) {
	cs, rs, found := strings.Cut(string(id), ",")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCellID, id)
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCellID, id)
	}
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCellID, id)
	}
	return col, row, nil
}

type Cell struct {
	Col, Row int
	Mine     bool
	Adjacent int /* mined neighbours, 0 to 8 */
	Revealed bool
	Marked   bool
}

func (c Cell) ID() CellID {
	return Encode(c.Col, c.Row)
}
