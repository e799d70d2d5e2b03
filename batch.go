package geohash

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batches of at least this many rows get spread over multiple goroutines. Below it
// the scheduling overhead outweighs the work: a 12 character hash is only 60 steps.
// A var so that tests can force either route.
var parallelThreshold = 4096

// batch calls fn for every row in [0, n). Rows are independent of each other, so
// large batches are cut into contiguous chunks, one per available P, and run
// concurrently. fn must only write to its own row.
//
// The error of the first failing row is returned wrapped in a RowError. When run
// concurrently, "first" means first observed, which need not be the lowest row.
func batch(n int, fn func(i int) error) error {
	if n < parallelThreshold {
		return batchRange(0, n, fn)
	}

	var (
		procs = runtime.GOMAXPROCS(0)
		chunk = (n + procs - 1) / procs
		g     errgroup.Group
	)

	g.SetLimit(procs)

	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}

		g.Go(func() error {
			return batchRange(lo, hi, fn)
		})
	}

	return g.Wait()
}

// each is batch for rows that cannot fail.
func each(n int, fn func(i int)) {
	// The wrapped fn never returns an error, so neither does batch.
	_ = batch(n, func(i int) error {
		fn(i)
		return nil
	})
}

func batchRange(lo, hi int, fn func(i int) error) error {
	for i := lo; i < hi; i++ {
		if err := fn(i); err != nil {
			return &RowError{Row: i, Err: err}
		}
	}

	return nil
}
