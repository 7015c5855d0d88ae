package cmd

import (
	"github.com/df07/go-whitted-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve renders over HTTP until the process is stopped.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	s := server.NewServer(ctx.Int("port"), ctx.GlobalString("scene-dir"))
	if err := s.Start(); err != nil {
		logger.Error(err)
		return err
	}
	return nil
}
