package loaders

import (
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// jsonScenePrefix marks scene IDs produced by scene.ListJSONScenes
const jsonScenePrefix = "json:"

// ResolveScene turns a scene reference into a scene. A reference is a built-in
// scene ID, "json:<name>" for <sceneDir>/<name>.json, or a path to a .json file.
func ResolveScene(ref, sceneDir string) (*scene.Scene, error) {
	switch {
	case strings.HasPrefix(ref, jsonScenePrefix):
		name := filepath.Base(strings.TrimPrefix(ref, jsonScenePrefix))
		return LoadScene(filepath.Join(sceneDir, name+".json"))
	case strings.EqualFold(filepath.Ext(ref), ".json"):
		return LoadScene(ref)
	default:
		return scene.Create(ref)
	}
}
