package problems

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/limaJavier/cohomology/pkg/algebra"
	"github.com/limaJavier/cohomology/pkg/cohomology"
	"github.com/samber/lo"
)

var ErrUnknownProblem = errors.New("problems: unknown problem")

// Problem asks for the 1-cocycles of Source with coefficients in Target under Action
type Problem struct {
	Name        string
	Description string
	Source      algebra.FiniteGroup
	Target      algebra.FiniteGroup
	Action      algebra.GroupAction
}

func (problem Problem) Cocycles() iter.Seq[algebra.Mapping] {
	return cohomology.Cocycles(problem.Source, problem.Target, problem.Action)
}

var catalog = map[string]func() (Problem, error){
	"P01": P01,
	"P02": P02,
	"P03": P03,
	"P04": P04,
}

// Names returns the names of the built-in problems in order
func Names() []string {
	names := lo.Keys(catalog)
	slices.Sort(names)
	return names
}

func ByName(name string) (Problem, error) {
	build, ok := catalog[name]
	if !ok {
		return Problem{}, fmt.Errorf("%q (expected one of %v): %w", name, Names(), ErrUnknownProblem)
	}
	return build()
}

// Z/2 acting trivially on Z/6
func P01() (Problem, error) {
	g, a := algebra.CyclicGroup(2), algebra.CyclicGroup(6)
	action, err := algebra.ConstantAction(g, a, algebra.IdentityMapping(a))
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Name:        "P01",
		Description: "Z/2 acting trivially on Z/6",
		Source:      g,
		Target:      a,
		Action:      action,
	}, nil
}

// Z/2 acting on Z/6 by negation
func P02() (Problem, error) {
	g, a := algebra.CyclicGroup(2), algebra.CyclicGroup(6)
	negation, err := algebra.NewMapping(a, a, lo.Map(a.Elements(), func(i algebra.Element, _ int) algebra.Element {
		return (algebra.Element(a.Size()) - i) % algebra.Element(a.Size())
	}))
	if err != nil {
		return Problem{}, err
	}

	action, err := algebra.NewGroupAction(g, a, []algebra.Mapping{algebra.IdentityMapping(a), negation})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Name:        "P02",
		Description: "Z/2 acting on Z/6 by negation",
		Source:      g,
		Target:      a,
		Action:      action,
	}, nil
}

// S3 acting on Z/6 as the Galois group of Q(cbrt(2), w) over Q: the complex conjugation s
// acts as negation while t (cbrt(2) -> w*cbrt(2)) acts trivially.
// The action is keyed to the lexicographic indexing of S3's elements, under which S3 = <s, t | s^2 = t^3 = stst = 1>
// is ordered as [1, s, st^2, t, t^2, st]; SignAction derives the same action from permutation semantics.
func P03() (Problem, error) {
	g, a := algebra.SymmetricGroup(3), algebra.CyclicGroup(6)
	conjugation := algebra.NegationMapping(a)
	identity := algebra.IdentityMapping(a)

	action, err := algebra.NewGroupAction(g, a, []algebra.Mapping{
		identity,
		conjugation,
		conjugation,
		identity,
		identity,
		conjugation,
	})
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Name:        "P03",
		Description: "S3 acting on Z/6 through the sign of a permutation",
		Source:      g,
		Target:      a,
		Action:      action,
	}, nil
}

// Z/2 x Z/2 acting on Z/4, where the first factor negates and the second one acts trivially
func P04() (Problem, error) {
	product, a := algebra.DirectProduct(algebra.CyclicGroup(2), algebra.CyclicGroup(2)), algebra.CyclicGroup(4)

	mapping := lo.Map(product.Elements(), func(x algebra.Element, _ int) algebra.Mapping {
		first, _ := product.Components(x)
		return lo.Ternary(first == 0, algebra.IdentityMapping(a), algebra.NegationMapping(a))
	})
	action, err := algebra.NewGroupAction(product.FiniteGroup, a, mapping)
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Name:        "P04",
		Description: "Z/2 x Z/2 acting on Z/4, the first factor by negation",
		Source:      product.FiniteGroup,
		Target:      a,
		Action:      action,
	}, nil
}

// SignAction lets S(n) act on target through the sign of each permutation: even
// permutations act trivially and odd ones by negation.
func SignAction(n uint64, target algebra.FiniteGroup) (algebra.GroupAction, error) {
	mapping := lo.Map(algebra.Permutations(n), func(permutation []uint64, _ int) algebra.Mapping {
		return lo.Ternary(algebra.PermutationSign(permutation) == 1, algebra.IdentityMapping(target), algebra.NegationMapping(target))
	})
	return algebra.NewGroupAction(algebra.SymmetricGroup(n), target, mapping)
}
