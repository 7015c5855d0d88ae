package loaders

import "errors"

var (
	ErrUnknownElement     = errors.New("unknown element type")
	ErrUnknownLight       = errors.New("unknown light type")
	ErrUnsupportedFormat  = errors.New("unsupported image format")
	ErrInvalidColor       = errors.New("color must have 3 or 4 components")
	ErrMissingSceneFields = errors.New("scene is missing required fields")
)
