package material

import "errors"

var (
	ErrNegativeWeight = errors.New("material: diffuse and specular weights must be non-negative")
)
