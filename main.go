package main

import (
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with recursive Whitted ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "scene-dir",
			Value: "scenes",
			Usage: "directory searched for json:<name> scenes",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene, a JSON scene from the scene directory (json:<name>) or
a JSON scene file. The output format is chosen from the extension of --out
(png, bmp, tif or tiff).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene ID or JSON scene file",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override the scene frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "override the scene frame height",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "override the scene field of view in degrees",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 1,
					Usage: "number of goroutines shading rows",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in and JSON scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve rendered frames over HTTP",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to listen on",
				},
			},
			Action: cmd.Serve,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
