package artwork

import "errors"

var (
	ErrEmptyCatalog = errors.New("artwork catalog is empty")
)
