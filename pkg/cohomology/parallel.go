package cohomology

import (
	"context"
	"iter"
	"slices"

	"github.com/limaJavier/cohomology/pkg/algebra"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// CollectParallel collects the same cocycles as Collect(Cocycles(g, a, action)), in the
// same order. The search space is split by the value at the first element of G and at
// most workers partitions are searched at once (workers <= 0 means no limit).
// It returns ctx's error if ctx is done before the search finishes.
func CollectParallel(ctx context.Context, g, a algebra.FiniteGroup, action algebra.GroupAction, workers int) ([]algebra.Mapping, error) {
	if g.Size() == 0 {
		return Collect(Cocycles(g, a, action)), nil
	}

	partitions := make([][]algebra.Mapping, a.Size())
	err := searchPartitions(ctx, g, a, action, workers, func(value uint64, cocycles iter.Seq[algebra.Mapping]) {
		partitions[value] = Collect(cocycles)
	})
	if err != nil {
		return nil, err
	}

	return slices.Concat(partitions...), nil
}

// CountParallel counts the same cocycles as Count(Cocycles(g, a, action)) without keeping them,
// searching partitions the way CollectParallel does.
func CountParallel(ctx context.Context, g, a algebra.FiniteGroup, action algebra.GroupAction, workers int) (uint64, error) {
	if g.Size() == 0 {
		return Count(Cocycles(g, a, action)), nil
	}

	counts := make([]uint64, a.Size())
	err := searchPartitions(ctx, g, a, action, workers, func(value uint64, cocycles iter.Seq[algebra.Mapping]) {
		counts[value] = Count(cocycles)
	})
	if err != nil {
		return 0, err
	}

	return lo.Sum(counts), nil
}

// Runs consume once per value of A, on the cocycles whose value at the first element of G is value.
// Each call owns its partition, so consume may write to a per-value slot without locking.
func searchPartitions(ctx context.Context, g, a algebra.FiniteGroup, action algebra.GroupAction, workers int, consume func(value uint64, cocycles iter.Seq[algebra.Mapping])) error {
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for value := range a.Size() {
		group.Go(func() error {
			// Fix the first (most significant) position, so that partitions follow the generation order
			constraints := []func(tuple []uint64) bool{
				func(tuple []uint64) bool {
					return tuple[0] == value
				},
				// Prunes whatever remains once ctx is done
				func(_ []uint64) bool {
					return ctx.Err() == nil
				},
			}

			consume(value, cocycles(g, a, action, constraints))
			return ctx.Err()
		})
	}

	return group.Wait()
}
