package renderer

import "errors"

var (
	ErrNoSink        = errors.New("renderer: no pixel sink attached")
	ErrSceneNotValid = errors.New("renderer: scene is not valid")
)
