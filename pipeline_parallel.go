// pipeline_parallel.go - Bounded worker pool for the per-tile rasterization fan-out

package rasterpipe

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderTilesParallel rasterizes every tile in p with one errgroup per
// call: each tile gets its own goroutine, and SetLimit keeps at most
// workers of them running at once, a bounded fan-out across cores in the
// spirit of the teacher engine's coprocessor dispatch.
// Tiles own disjoint pixel rectangles and disjoint face-index slices
// (spec §5), so no synchronization is needed between them; errgroup.Group
// gives this fan-out cancellation-on-first-error semantics for free even
// though RasterizeTile itself cannot fail.
//
// workers <= 0 defaults to runtime.GOMAXPROCS(0).
func RenderTilesParallel(ctx context.Context, p *Pool, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	tiles := p.Tiles()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range tiles {
		i := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			RasterizeTile(p, i)
			return nil
		})
	}
	return g.Wait()
}

// TransformVerticesParallel splits TransformVertices across workers
// goroutines by contiguous vertex range. Each range touches disjoint
// slice indices, so no locking is required.
func TransformVerticesParallel(ctx context.Context, p *Pool, workers int) error {
	return parallelRange(ctx, p.VertexCount(), workers, func(start, end int) {
		TransformVerticesRange(p, start, end)
	})
}

// ProjectVerticesParallel splits ProjectVertices across workers
// goroutines by contiguous vertex range.
func ProjectVerticesParallel(ctx context.Context, p *Pool, workers int) error {
	return parallelRange(ctx, p.VertexCount(), workers, func(start, end int) {
		ProjectVerticesRange(p, start, end)
	})
}

// parallelRange divides [0, n) into up to workers contiguous chunks and
// runs fn over each chunk concurrently.
func parallelRange(ctx context.Context, n, workers int, fn func(start, end int)) error {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fn(start, end)
			return nil
		})
	}
	return g.Wait()
}
