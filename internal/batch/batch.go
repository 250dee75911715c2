// Package batch runs independent generation jobs on a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidCount is returned for a negative job count.
var ErrInvalidCount = errors.New("invalid count")

// Run calls fn for i in [0, n) with at most workers calls in flight and
// returns the results in index order. The first error cancels the context
// passed to later calls and is returned; no partial results are returned.
// workers < 1 runs jobs one at a time.
func Run[T any](ctx context.Context, n, workers int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if workers < 1 {
		workers = 1
	}

	out := make([]T, n)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, i)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// the parent may have been cancelled before any job started
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
