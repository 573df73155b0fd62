// Package parallel splits an index range across a fixed set of workers and
// runs one goroutine per partition, joining all of them before returning.
package parallel

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidWorkers is returned when the requested worker count is not positive.
	ErrInvalidWorkers = errors.New("worker count must be positive")
	// ErrInvalidLength is returned when the index range is empty or negative.
	ErrInvalidLength = errors.New("length must be positive")
	// ErrWorkerFailed is returned when a worker aborts before finishing its partition.
	ErrWorkerFailed = errors.New("worker failed")
)

// Partition is a half-open index range [Start, End) owned by exactly one worker.
type Partition struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the partition.
func (p Partition) Len() int {
	return p.End - p.Start
}

// Effective returns min(workers, n), the number of partitions Split produces.
func Effective(n, workers int) int {
	return min(workers, n)
}

// Split divides [0, n) into min(workers, n) contiguous partitions of n/workers
// indices each. The last partition absorbs the remainder.
func Split(n, workers int) ([]Partition, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	workers = Effective(n, workers)
	step := n / workers

	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{Start: i * step, End: (i + 1) * step}
	}
	parts[workers-1].End = n

	return parts, nil
}

// For runs fn once per partition of [0, n), each on its own goroutine, and
// waits for every goroutine before returning. fn must only write indices
// inside the partition it receives. A panicking worker is reported as
// ErrWorkerFailed after the remaining workers have been joined.
func For(n, workers int, fn func(Partition)) error {
	parts, err := Split(n, workers)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for i, p := range parts {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: partition %d [%d,%d): %v", ErrWorkerFailed, i, p.Start, p.End, r)
				}
			}()

			fn(p)
			return nil
		})
	}

	return g.Wait()
}
