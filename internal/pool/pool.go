// Package pool runs data-parallel jobs over a slice with a fixed number of
// workers.
package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item using numJobs workers. Items are split into
// contiguous partitions, one per worker, and results keep the input order.
// The first error cancels the context passed to fn and is returned.
func Map[I, O any](ctx context.Context, numJobs int, items []I, fn func(context.Context, I) (O, error)) ([]O, error) {
	result := make([]O, len(items))
	if numJobs < 1 {
		numJobs = 1
	}
	if numJobs > len(items) {
		numJobs = len(items)
	}
	if numJobs <= 1 {
		for i := range items {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			o, err := fn(ctx, items[i])
			if err != nil {
				return nil, err
			}
			result[i] = o
		}
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range partitions(len(items), numJobs) {
		p := p
		g.Go(func() error {
			for i := p.start; i < p.end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				o, err := fn(ctx, items[i])
				if err != nil {
					return err
				}
				result[i] = o
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

type partition struct {
	start, end int
}

// partitions splits n items into k contiguous ranges which sizes differ by
// at most one.
func partitions(n, k int) []partition {
	size, rest := n/k, n%k
	result := make([]partition, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		end := start + size
		if i < rest {
			end++
		}
		result = append(result, partition{start: start, end: end})
		start = end
	}
	return result
}
