package scene

import "errors"

var (
	ErrEmptyFrame    = errors.New("scene: frame has zero width or height")
	ErrAspectRatio   = errors.New("scene: width must be greater than height")
	ErrFieldOfView   = errors.New("scene: field of view must be between 0 and 180 degrees")
	ErrInvalidRadius = errors.New("scene: sphere radius must be positive")
	ErrNotUnitLength = errors.New("scene: direction is not unit length")
	ErrUnknownScene  = errors.New("scene: unknown scene")
	ErrNonFinite     = errors.New("scene: value must be finite and within ±1e100")
)
