package internal

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Hull contiguous blocks of the input concurrently, then hull the union of the
// block hulls. Every true hull vertex is a hull vertex of whatever block it
// lands in, so the second pass sees all of them.
func ParallelQuickHull(points []Point, indices []int, workers int) (IndexList, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	blockSize := len(indices) / workers
	if workers == 1 || blockSize < 3 {
		return QuickHull(points, indices), nil
	}

	partials := make([]IndexList, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * blockSize
		end := start + blockSize
		if w == workers-1 {
			end = len(indices)
		}
		w, block := w, indices[start:end]
		g.Go(func() (err error) {
			// Panics don't cross goroutines, so recover here rather than at the
			// public API
			defer func() {
				if recoveredErr := HandleHullPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			partials[w] = QuickHull(points, block)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []int
	for _, partial := range partials {
		combined = append(combined, partial...)
	}
	return QuickHull(points, combined), nil
}
