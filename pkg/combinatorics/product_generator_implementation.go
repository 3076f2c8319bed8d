package combinatorics

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

type productGeneratorImplementation struct {
	domains []uint64
}

func (generator *productGeneratorImplementation) ConstrainedProducts(constraints []func(tuple []uint64) bool) iter.Seq[[]uint64] {
	return func(yield func([]uint64) bool) {
		tuple := slices.Repeat([]uint64{Unassigned}, len(generator.domains))
		generator.constrainedProducts(constraints, 0, tuple, yield)
	}
}

func (generator *productGeneratorImplementation) Products() iter.Seq[[]uint64] {
	return generator.ConstrainedProducts(nil)
}

// Returns false once the consumer has stopped the iteration
func (generator *productGeneratorImplementation) constrainedProducts(
	constraints []func(tuple []uint64) bool,
	currentDomain int,
	tuple []uint64,
	yield func([]uint64) bool) bool {

	if currentDomain >= len(generator.domains) {
		return yield(slices.Clone(tuple))
	}

	for i := uint64(0); i < generator.domains[currentDomain]; i++ {
		tuple[currentDomain] = i
		constraintViolated := lo.SomeBy(constraints, func(constraint func(tuple []uint64) bool) bool {
			return !constraint(tuple)
		})

		if constraintViolated {
			continue
		}

		if !generator.constrainedProducts(constraints, currentDomain+1, tuple, yield) {
			return false
		}
	}

	tuple[currentDomain] = Unassigned
	return true
}
