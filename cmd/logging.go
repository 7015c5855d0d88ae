package cmd

import (
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// verbosity maps the global -v/-vv flags to a log level; -vv wins.
func verbosity(ctx *cli.Context) log.Level {
	switch {
	case ctx.GlobalBool("vv"):
		return log.Debug
	case ctx.GlobalBool("v"):
		return log.Info
	default:
		return log.Notice
	}
}

func setupLogging(ctx *cli.Context) {
	log.SetLevel(verbosity(ctx))
}
