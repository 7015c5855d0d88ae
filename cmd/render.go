package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	opts := renderer.DefaultOptions()
	opts.Workers = ctx.Int("workers")

	r, err := renderer.NewRenderer(sc, opts, log.New("renderer"))
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d", ctx.String("scene"), sc.Width, sc.Height)
	sink := renderer.NewImageSink(sc.Width, sc.Height)
	stats, err := r.Render(sink)
	if err != nil {
		logger.Errorf("error rendering frame: %s", err.Error())
		return err
	}
	logger.Noticef("rendered frame in %d ms", stats.RenderTime.Nanoseconds()/1000000)

	imgFile := ctx.String("out")
	start := time.Now()
	if err := loaders.SaveImage(imgFile, sink.Image); err != nil {
		logger.Errorf("error writing image: %s", err.Error())
		return err
	}
	logger.Noticef("wrote %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1000000)

	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	writeFrameStats(&buf, stats)
	logger.Noticef("frame statistics\n%s", buf.String())
}

func writeFrameStats(w io.Writer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Workers", "Primary", "Shadow", "Reflection", "Rays/pixel"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.Rays.Primary),
		fmt.Sprintf("%d", stats.Rays.Shadow),
		fmt.Sprintf("%d", stats.Rays.Reflection),
		fmt.Sprintf("%.2f", stats.RaysPerPixel()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.RenderTime.String()})
	table.Render()
}
