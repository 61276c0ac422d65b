// Command plandscape reads birth/death pairs from a file and writes the
// first K persistence landscapes to CSV, optionally plotting them to PNG.
//
// Flags: input file path, K, optional debug flag, optional CSV path,
// optional plot flag with width/height, optional "disable prefilter" flag.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/arclake/plandscape/landscape"
	"github.com/arclake/plandscape/plcore"
	"github.com/arclake/plandscape/plcsv"
	"github.com/arclake/plandscape/plparse"
	"github.com/arclake/plandscape/plplot"
	"github.com/arclake/plandscape/prefilter"
)

func main() {
	cmd := &cli.Command{
		Name:  "plandscape",
		Usage: "compute persistence landscapes from a birth/death interval file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "path to the birth/death pair file"},
			&cli.IntFlag{Name: "k", Value: 1, Usage: "number of landscapes to compute"},
			&cli.StringFlag{Name: "csv", Value: "output.csv", Usage: "path to write the CSV output"},
			&cli.BoolFlag{Name: "plot", Usage: "also render the landscapes to a PNG"},
			&cli.StringFlag{Name: "plot-path", Value: "landscape.png", Usage: "path for the rendered PNG"},
			&cli.IntFlag{Name: "width", Value: 1280, Usage: "plot width in pixels"},
			&cli.IntFlag{Name: "height", Value: 720, Usage: "plot height in pixels"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.BoolFlag{Name: "no-prefilter", Usage: "skip the top-K prefilter"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return fmt.Errorf("plandscape: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	k := cmd.Int("k")
	if k <= 0 {
		return plcore.ErrNonPositiveK
	}

	f, err := os.Open(cmd.String("input"))
	if err != nil {
		return fmt.Errorf("plandscape: opening input: %w", err)
	}
	defer f.Close()

	raw, err := plparse.Parse(f)
	if err != nil {
		return fmt.Errorf("plandscape: parsing input: %w", err)
	}
	logger.Debug("parsed input", zap.Int("count", len(raw)))

	intervals, dropped := plcore.Validate(raw)
	logger.Debug("validated intervals", zap.Int("kept", len(intervals)), zap.Int("dropped", dropped))

	if len(intervals) == 0 {
		logger.Info("no intervals to process after validation")
	}

	filtered := intervals
	if !cmd.Bool("no-prefilter") {
		filtered = prefilter.Filter(intervals, int(k))
		logger.Debug("prefiltered intervals", zap.Int("before", len(intervals)), zap.Int("after", len(filtered)))
	}

	landscapes, err := landscape.Generate(filtered, int(k))
	if err != nil {
		return fmt.Errorf("plandscape: generating landscapes: %w", err)
	}

	csvPath := cmd.String("csv")
	out, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("plandscape: creating csv output: %w", err)
	}
	defer out.Close()
	if err := plcsv.Write(out, landscapes); err != nil {
		return fmt.Errorf("plandscape: writing csv: %w", err)
	}
	logger.Info("wrote csv", zap.String("path", csvPath))

	if cmd.Bool("plot") {
		plotPath := cmd.String("plot-path")
		if err := plplot.Save(plotPath, landscapes, int(cmd.Int("width")), int(cmd.Int("height"))); err != nil {
			return fmt.Errorf("plandscape: plotting: %w", err)
		}
		logger.Info("wrote plot", zap.String("path", plotPath))
	}

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
