// Package parallel splits row ranges across CPU cores.
package parallel

import (
	"runtime"
	"sync"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

// DefaultThreshold is the row count above which extractors go parallel.
const DefaultThreshold = 1000

// Parallelize divides items into contiguous [start, end) ranges, one per CPU
// core, and calls fn for each range concurrently. A panic in fn is re-raised
// on the calling goroutine as a *errors.PanicError after all ranges finish,
// so callers see a panic whether or not the work ran in parallel.
func Parallelize(items int, fn func(start, end int)) {
	err := ParallelizeErr(items, func(start, end int) error {
		fn(start, end)
		return nil
	})
	if err != nil {
		// fn cannot return an error, so err is a recovered panic
		panic(err)
	}
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items <= threshold and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeErr is Parallelize for range functions that can fail. A panic in
// fn is converted into a *errors.PanicError. When several ranges fail, the
// error from the range with the lowest start is returned, so the result does
// not depend on scheduling.
func ParallelizeErr(items int, fn func(start, end int) error) error {
	if items <= 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers
	errs := make([]error, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(slot, s, e int) {
			defer wg.Done()
			errs[slot] = errors.SafeExecute("parallel range", func() error {
				return fn(s, e)
			})
		}(i, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ParallelizeErrWithThreshold is the fallible counterpart of
// ParallelizeWithThreshold.
func ParallelizeErrWithThreshold(items int, threshold int, fn func(start, end int) error) error {
	if items <= threshold {
		return errors.SafeExecute("serial range", func() error {
			return fn(0, items)
		})
	}
	return ParallelizeErr(items, fn)
}
