package rast

import (
	"image"

	"github.com/gogpu/rast/internal/parallel"
)

// Batch runs independent rasterization jobs in parallel and returns
// their results indexed by job position, so the output is identical
// to running the jobs sequentially regardless of scheduling. Every
// kernel operation is a pure function, which makes this safe without
// any coordination on the caller's side.
//
// workers <= 0 uses GOMAXPROCS. The worker pool lives for the
// duration of the call.
func Batch(workers int, jobs ...func() []image.Point) [][]image.Point {
	results := make([][]image.Point, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	work := make([]func(), len(jobs))
	for i, job := range jobs {
		i, job := i, job
		work[i] = func() {
			results[i] = job()
		}
	}
	pool.ExecuteAll(work)

	Logger().Debug("rast: batch complete", "jobs", len(jobs), "workers", pool.Workers())
	return results
}
