package cohomology

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/limaJavier/cohomology/pkg/algebra"
	"github.com/limaJavier/cohomology/pkg/combinatorics"
)

// Cocycles lazily yields every mapping G → A satisfying the cocycle identity under action.
// Candidates are the tuples of A's elements of length |G| in lexicographic order, and the
// cocycles are yielded in that same order. Ranging over the result again repeats the search.
func Cocycles(g, a algebra.FiniteGroup, action algebra.GroupAction) iter.Seq[algebra.Mapping] {
	return cocycles(g, a, action, nil)
}

func cocycles(g, a algebra.FiniteGroup, action algebra.GroupAction, constraints []func(tuple []uint64) bool) iter.Seq[algebra.Mapping] {
	generator := combinatorics.NewProductGenerator(slices.Repeat([]uint64{a.Size()}, int(g.Size()))...)

	return func(yield func(algebra.Mapping) bool) {
		for tuple := range generator.ConstrainedProducts(constraints) {
			candidate, err := algebra.NewMapping(g, a, algebra.ElementsOf(tuple...))
			if err != nil {
				panic(fmt.Sprintf("cannot build candidate mapping: %v", err))
			}

			if candidate.Cocycle(action) && !yield(candidate) {
				return
			}
		}
	}
}

// SearchSpace returns |A|^|G|, the amount of candidates Cocycles examines. ok is false if it overflows.
func SearchSpace(g, a algebra.FiniteGroup) (size uint64, ok bool) {
	size = 1
	for range g.Size() {
		high, low := bits.Mul64(size, a.Size())
		if high != 0 {
			return 0, false
		}
		size = low
	}
	return size, true
}

// Count consumes the whole sequence and returns its length.
func Count(cocycles iter.Seq[algebra.Mapping]) uint64 {
	count := uint64(0)
	for range cocycles {
		count++
	}
	return count
}

// Collect consumes the whole sequence into a slice.
func Collect(cocycles iter.Seq[algebra.Mapping]) []algebra.Mapping {
	return slices.Collect(cocycles)
}
