package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/osuushi/hullgen/dataset"
	"github.com/osuushi/hullgen/hull"
	"github.com/osuushi/hullgen/input"
	"github.com/osuushi/hullgen/label"
	"github.com/osuushi/hullgen/render"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Generates the convex hull datasets used by the hull test suite, and checks
// existing ones. For each size N, three files are written to the output
// directory:
//
//	{N}_points.csv              all points, "x;y" with six decimals
//	{N}_points_indices.txt      hull vertex indices into the points file
//	{N}_points_full_indices.csv hull vertex coordinates, same format
//
// The hull command computes the hull of points given on the command line or
// in a .csv or .svg file, and prints a report.

var (
	app        = kingpin.New("hullgen", "Generate and check convex hull test datasets.")
	logLevel   = app.Flag("log-level", "Minimum level of log messages.").Default("info").Enum("debug", "info", "warn", "error")
	logFormat  = app.Flag("log-format", "Log output format.").Default("text").Enum("text", "json")
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	cpuProfile = app.Flag("cpuprofile", "Write a CPU profile into this directory.").String()

	generateCmd     = app.Command("generate", "Generate random datasets and their hulls.")
	generateDir     = generateCmd.Flag("out", "Output directory, created if missing.").Short('o').Default(dataset.DefaultDir).String()
	generateSizes   = sizesFlag(generateCmd.Flag("sizes", "Comma separated dataset sizes."))
	generateSeed    = generateCmd.Flag("seed", "Random seed. 0 picks one from the clock.").Uint64()
	generateBackend = generateCmd.Flag("backend", "Hull backend.").Default("monotone").Enum(hull.Names()...)
	generatePreview = generateCmd.Flag("preview", "Also write a PNG preview of this width for each dataset.").Int()

	hullCmd       = app.Command("hull", "Compute the hull of a point set and print a report.")
	hullBackend   = hullCmd.Flag("backend", "Hull backend.").Default("auto").Enum(hull.Names()...)
	hullDemoCount = hullCmd.Flag("demo-count", "Number of demo points used when no input is given.").Default("1000").Int()
	hullPreview   = hullCmd.Flag("preview", "Draw the hull and print it inline (iTerm).").Bool()
	hullInput     = hullCmd.Arg("points", `Points as "x;y ...", "x,y ...", "x y ...", or a single .csv or .svg file.`).Strings()

	verifyCmd   = app.Command("verify", "Check generated datasets.")
	verifyDir   = verifyCmd.Flag("dir", "Dataset directory.").Default(dataset.DefaultDir).String()
	verifySizes = sizesFlag(verifyCmd.Flag("sizes", "Comma separated dataset sizes."))
)

const previewWidth = 800

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(command); err != nil {
		render.NewConsole(os.Stderr, !*noColor).Failed(err)
		os.Exit(1)
	}
}

func run(command string) error {
	logger := newLogger(*logFormat, *logLevel)
	console := render.NewConsole(os.Stdout, !*noColor)

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case generateCmd.FullCommand():
		return generate(ctx, logger, console)
	case hullCmd.FullCommand():
		return computeHull(logger, console)
	case verifyCmd.FullCommand():
		return verify(console)
	}
	return errors.Errorf("unknown command %q", command)
}

func generate(ctx context.Context, logger *Logger, console *render.Console) error {
	backend, err := hull.ByName(*generateBackend)
	if err != nil {
		return err
	}
	seed := *generateSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("generating datasets", "dir", *generateDir, "sizes", []int(*generateSizes), "seed", seed, "backend", *generateBackend)

	g := &dataset.Generator{
		Dir:          *generateDir,
		Sizes:        *generateSizes,
		Sampler:      dataset.NewUniformSampler(seed),
		Backend:      backend,
		Logger:       logger.Logger,
		PreviewWidth: *generatePreview,
	}
	datasets, err := g.Generate(ctx)
	for _, ds := range datasets {
		console.Generated(ds.Size, len(ds.Indices))
	}
	return err
}

func computeHull(logger *Logger, console *render.Console) error {
	points, err := input.ParseArgs(*hullInput)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		points = dataset.DemoPoints(*hullDemoCount)
		console.Note("No input points, using %d demo points. Example: hullgen hull \"0,0 1,1 2,0 1,2 0.5,0.5\"", len(points))
	}

	backend, err := hull.ByName(*hullBackend)
	if err != nil {
		return err
	}

	analysis := hull.Analyze(points)
	console.Analysis(analysis)

	start := time.Now()
	indices, err := backend.HullIndices(points)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	logger.Debug("hull computed", "points", len(points), "hull_vertices", len(indices), "elapsed", elapsed)
	console.Results(hull.Resolve(points, indices), elapsed, *hullBackend)

	if *hullPreview {
		path := filepath.Join(os.TempDir(), "hull-"+label.New()+".png")
		if err := hull.SavePreview(path, points, indices, previewWidth); err != nil {
			return err
		}
		logger.Info("preview written", "path", path)
		hull.CatPreview(path, os.Stdout)
	}
	return nil
}

func verify(console *render.Console) error {
	failures := make(dataset.SizeErrors)
	for _, size := range *verifySizes {
		err := dataset.Verify(*verifyDir, size)
		console.Verified(size, err)
		if err != nil {
			failures[size] = err
		}
	}
	if len(failures) > 0 {
		return failures
	}
	return nil
}
