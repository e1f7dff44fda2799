package charting

import "errors"

var (
	ErrUnknownEvent     = errors.New("no handler registered for event")
	ErrInvalidSelection = errors.New("invalid region selection")
	ErrRender           = errors.New("chart rendering failed")
)
