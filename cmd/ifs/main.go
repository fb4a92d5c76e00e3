// Command ifs renders the attractor of an iterated function system to a PNG
// file.
//
// Usage:
//
//	ifs [flags] FILE
//
// FILE is either a plain file with one map "a b c d e f [weight]" per line or
// a TOML file; see package ifsfile. Defaults for all flags are read from
// $IFS_CONFIG or ~/.config/ifs/config.toml and from IFS_* environment
// variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"honnef.co/go/ifs"
	"honnef.co/go/ifs/ifsfile"
	"honnef.co/go/ifs/internal/config"
	"honnef.co/go/ifs/render"
)

// boundsSamples is the number of points used to estimate the attractor's
// extent when fitting it to the image.
const boundsSamples = 100_000

type options struct {
	config.Config
	output  string
	colors  string
	verbose bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ifs: %v\n", err)
		os.Exit(2)
	}

	opts := options{Config: cfg}
	r := &opts.Render
	flag.IntVar(&r.Width, "width", r.Width, "image width")
	flag.IntVar(&r.Height, "height", r.Height, "image height")
	flag.IntVar(&r.Points, "points", r.Points, "number of points to plot")
	flag.IntVar(&r.BurnIn, "burn-in", r.BurnIn, "number of initial points to discard")
	flag.Float64Var(&r.Scale, "scale", r.Scale, "scale relative to the image size, ignored with -fit")
	flag.IntVar(&r.Supersample, "supersample", r.Supersample, "supersampling factor")
	flag.BoolVar(&r.Fit, "fit", r.Fit, "fit the attractor to the image")
	flag.Float64Var(&r.Margin, "margin", r.Margin, "margin used by -fit, as a fraction of the attractor's size")
	flag.StringVar(&r.Background, "background", r.Background, "background color")
	flag.StringVar(&opts.Output.Dir, "dir", opts.Output.Dir, "output directory, ignored with -o")
	flag.Uint64Var(&opts.Random.Seed, "seed", opts.Random.Seed, "random seed, 0 for a random one")
	flag.StringVar(&opts.output, "o", "", "output file")
	flag.StringVar(&opts.colors, "colors", "", "comma-separated colors of the maps, in order")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: ifs [flags] FILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ifs.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, err := run(ctx, opts, flag.Arg(0))
	if err != nil {
		logger.Error("rendering failed", "err", err)
		stop()
		os.Exit(1)
	}
	logger.Info("image saved", "path", path)
}

func run(ctx context.Context, opts options, file string) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	log := ifs.Logger()

	sys, err := ifsfile.ReadFile(file)
	if err != nil {
		return "", err
	}
	colors, err := ifsfile.ParseColors(opts.colors)
	if err != nil {
		return "", err
	}
	if len(colors) > 0 {
		// Colors given on the command line take precedence.
		sys.Colors = append(colors, sys.Colors[min(len(colors), len(sys.Colors)):]...)
	}
	bg, err := ifsfile.ParseColor(opts.Render.Background)
	if err != nil {
		return "", err
	}

	var engineOpts []ifs.Option
	if opts.Random.Seed != 0 {
		engineOpts = append(engineOpts, ifs.WithRand(ifs.NewRand(opts.Random.Seed)))
	}
	s, err := sys.New(engineOpts...)
	if err != nil {
		return "", err
	}
	if !s.Contractive() {
		log.Warn("system isn't contractive, points may diverge", "system", sys.Name)
	}

	r := opts.Render
	vp := render.DefaultViewport(r.Width, r.Height, r.Scale)
	if r.Fit {
		bounds := render.Bounds(s, boundsSamples, r.BurnIn)
		log.Debug("estimated bounds", "bounds", bounds)
		vp = render.FitViewport(bounds, r.Width, r.Height, r.Margin)
	}

	img, stats, err := render.Render(ctx, s, r.Width, r.Height, render.Options{
		Points:      r.Points,
		BurnIn:      r.BurnIn,
		Viewport:    vp,
		Background:  bg,
		Supersample: r.Supersample,
	})
	if err != nil {
		return "", err
	}
	log.Info("rendered", "system", sys.Name, "plotted", stats.Plotted, "off_canvas", stats.OffCanvas)

	out := opts.output
	if out == "" {
		out = filepath.Join(opts.Output.Dir, outputName(time.Now()))
	}
	if err := render.SavePNG(out, img); err != nil {
		return "", err
	}
	return out, nil
}

// outputName returns a file name that is unique even for images rendered
// within the same second.
func outputName(t time.Time) string {
	return fmt.Sprintf("%s-%s.png", t.Format("20060102-150405"), uuid.NewString()[:8])
}
