package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osuushi/hullgen/hull"
	"github.com/osuushi/hullgen/label"
	"github.com/pkg/errors"
)

// Sizes of the fixture set read by the hull test suite.
var DefaultSizes = []int{1500, 5000, 65000}

const DefaultDir = "datasets"

// Points, hull indices and hull coordinates for one size.
type Dataset struct {
	Size       int
	Points     []hull.Point
	Indices    []int
	HullPoints []hull.Point
}

// Generates one dataset per size into Dir. Sizes are processed one at a time.
// A failing size doesn't stop the others; every failure is reported in the
// SizeErrors returned at the end.
type Generator struct {
	Dir     string
	Sizes   []int
	Sampler Sampler
	Backend hull.Backend
	Logger  *slog.Logger

	// When positive, a PNG preview of this width is written next to each
	// dataset.
	PreviewWidth int
}

// Failures of individual sizes in a run, keyed by size.
type SizeErrors map[int]error

func (e SizeErrors) Error() string {
	sizes := make([]int, 0, len(e))
	for size := range e {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	messages := make([]string, len(sizes))
	for i, size := range sizes {
		messages[i] = fmt.Sprintf("size %d: %v", size, e[size])
	}
	return fmt.Sprintf("%d of the datasets failed: %s", len(sizes), strings.Join(messages, "; "))
}

// Run the generator. The output directory is created if missing; failing to
// create it aborts the run. Cancelling ctx stops the run between sizes.
func (g *Generator) Generate(ctx context.Context) ([]*Dataset, error) {
	logger := g.logger()
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", g.Dir)
	}

	var datasets []*Dataset
	failures := make(SizeErrors)
	for _, size := range g.Sizes {
		if err := ctx.Err(); err != nil {
			return datasets, errors.Wrap(err, "generation interrupted")
		}

		start := time.Now()
		ds, err := g.GenerateSize(size)
		if err != nil {
			logger.Error("dataset failed", "size", size, "error", err)
			failures[size] = err
			continue
		}
		logger.Info("dataset written",
			"size", size,
			"hull_vertices", len(ds.Indices),
			"dir", g.Dir,
			"elapsed", time.Since(start),
		)
		datasets = append(datasets, ds)
	}

	if len(failures) > 0 {
		return datasets, failures
	}
	return datasets, nil
}

// Sample, hull and write a single dataset. Files written before a failure are
// left in place.
func (g *Generator) GenerateSize(size int) (*Dataset, error) {
	if size <= 0 {
		return nil, errors.Errorf("size must be positive, got %d", size)
	}

	points := g.Sampler.Sample(size)
	if len(points) != size {
		return nil, errors.Errorf("sampler returned %d points, wanted %d", len(points), size)
	}
	indices, err := g.Backend.HullIndices(points)
	if err != nil {
		return nil, errors.Wrap(err, "compute hull")
	}
	ds := &Dataset{
		Size:       size,
		Points:     points,
		Indices:    indices,
		HullPoints: hull.Resolve(points, indices),
	}

	if err := ds.Write(g.Dir); err != nil {
		return nil, err
	}
	if g.PreviewWidth > 0 {
		path := filepath.Join(g.Dir, fmt.Sprintf("%d_points_preview.png", size))
		if err := hull.SavePreview(path, ds.Points, ds.Indices, g.PreviewWidth); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func (ds *Dataset) Write(dir string) error {
	files := Files(dir, ds.Size)
	if err := WritePoints(files.Points, ds.Points); err != nil {
		return err
	}
	if err := WriteIndices(files.Indices, ds.Indices); err != nil {
		return err
	}
	return WritePoints(files.FullIndices, ds.HullPoints)
}

func (g *Generator) logger() *slog.Logger {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("run", label.Of(g))
}
