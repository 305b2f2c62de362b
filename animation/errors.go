package animation

import "errors"

var (
	ErrUnknownAnimation = errors.New("unknown animation")
	ErrBadColor         = errors.New("invalid hex color")
)
