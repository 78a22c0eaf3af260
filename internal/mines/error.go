package mines

import "errors"

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrMalformedCellID   = errors.New("malformed cell id")
)
