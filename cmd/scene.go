package cmd

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Load the scene selected by the --scene flag and apply frame overrides.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	sc, err := loaders.ResolveScene(ctx.String("scene"), ctx.GlobalString("scene-dir"))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("width") {
		if sc.Width, err = frameDimension(ctx, "width"); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet("height") {
		if sc.Height, err = frameDimension(ctx, "height"); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet("fov") {
		sc.FOV = ctx.Float64("fov")
	}

	return sc, sc.Validate()
}

// Read a frame size flag, rejecting values that do not fit a pixel count.
func frameDimension(ctx *cli.Context, name string) (uint32, error) {
	value := ctx.Int(name)
	if value <= 0 || uint64(value) > math.MaxUint32 {
		return 0, fmt.Errorf("--%s must be a positive pixel count, got: %d", name, value)
	}
	return uint32(value), nil
}

// List built-in scenes and the JSON scenes found in the scene directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.GlobalString("scene-dir"))
	if err != nil {
		logger.Error(err)
		return err
	}

	var buf bytes.Buffer
	writeSceneTable(&buf, scenes)
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, info := range scenes {
		description := info.Description
		if info.Type == "json" {
			description = info.FilePath
		}
		table.Append([]string{info.ID, info.DisplayName, info.Type, description})
	}
	table.Render()
}
