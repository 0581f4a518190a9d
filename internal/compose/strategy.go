package compose

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Strategy runs n independent tasks.
type Strategy interface {
	// Run calls task once for every index in [0, n). It returns the context
	// error when the context was canceled before all tasks started.
	Run(ctx context.Context, n int, task func(ctx context.Context, i int)) error
}

// Sequential runs tasks one after the other in index order.
type Sequential struct{}

// Run implements Strategy.
func (Sequential) Run(ctx context.Context, n int, task func(ctx context.Context, i int)) error {
	for i := range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		task(ctx, i)
	}

	return nil
}

// Parallel runs tasks concurrently with at most Workers in flight. Zero or a
// negative value means no limit.
type Parallel struct {
	Workers int
}

// Run implements Strategy.
func (p Parallel) Run(ctx context.Context, n int, task func(ctx context.Context, i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}

	for i := range n {
		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			task(gctx, i)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
