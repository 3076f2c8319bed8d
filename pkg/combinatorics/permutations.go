package combinatorics

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Lazily yields all the permutations of {0, ..., n-1} in lexicographic order
func Permutations(n uint64) iter.Seq[[]uint64] {
	generator := NewProductGenerator(slices.Repeat([]uint64{n}, int(n))...)
	return generator.ConstrainedProducts([]func(tuple []uint64) bool{Distinct})
}

// Checks whether the assigned positions of the tuple hold pairwise different values
func Distinct(tuple []uint64) bool {
	assigned := lo.Filter(tuple, func(value uint64, _ int) bool {
		return value != Unassigned
	})
	return len(lo.Uniq(assigned)) == len(assigned)
}
