package combinatorics

import (
	"iter"
	"math"
)

// Marks a position of a tuple that has not been assigned yet
const Unassigned uint64 = math.MaxUint64

type ProductGenerator interface {
	// Lazily yields every tuple of the Cartesian product of the domains, in lexicographic order (position 0 is the most significant one).
	// All the constraints must take into account that if the value of tuple[i] (for all feasible i's) is Unassigned then the tuple is not ready to be evaluated if this evaluation involves tuple[i].
	// A tuple (or prefix) violating any constraint is pruned together with all of its extensions.
	//
	// Example:
	//
	//	generator := combinatorics.NewProductGenerator(3, 3)
	//
	//	for tuple := range generator.ConstrainedProducts([]func(tuple []uint64) bool{
	//		func(tuple []uint64) bool {
	//			// Verify "tuple[1] == Unassigned", since the predicate "tuple[1] == 1" relies in this index
	//			return tuple[1] == combinatorics.Unassigned || tuple[1] == 1
	//		},
	//	}) {
	//		fmt.Println(tuple)
	//	}
	//
	// Every yielded tuple is a fresh slice owned by the consumer. Stopping the iteration stops the search.
	ConstrainedProducts(constraints []func(tuple []uint64) bool) iter.Seq[[]uint64]

	// Same as ConstrainedProducts with no constraints at all
	Products() iter.Seq[[]uint64]
}

func NewProductGenerator(domains ...uint64) ProductGenerator {
	return &productGeneratorImplementation{
		domains: append([]uint64(nil), domains...),
	}
}
