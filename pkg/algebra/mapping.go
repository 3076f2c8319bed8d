package algebra

import (
	"fmt"
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Mapping is a set function from the elements of source to the elements of target.
// mapping[i] is the image of source element i.
type Mapping struct {
	source  FiniteGroup
	target  FiniteGroup
	mapping []Element
}

// NewMapping copies values and checks that there is exactly one value per source
// element and that every value lies in the target. A placeholder source accepts
// any length and a placeholder target accepts any value.
func NewMapping(source, target FiniteGroup, values []Element) (Mapping, error) {
	if !source.IsPlaceholder() && uint64(len(values)) != source.Size() {
		return Mapping{}, fmt.Errorf("%d values for a source of size %d: %w", len(values), source.Size(), ErrInvalidMapping)
	}
	if !target.IsPlaceholder() {
		if value, i, ok := lo.FindIndexOf(values, func(value Element) bool { return uint64(value) >= target.Size() }); ok {
			return Mapping{}, fmt.Errorf("value %d at %d is out of range [0, %d): %w", value, i, target.Size(), ErrInvalidMapping)
		}
	}

	return Mapping{source: source, target: target, mapping: slices.Clone(values)}, nil
}

func (m Mapping) Source() FiniteGroup {
	return m.source
}

func (m Mapping) Target() FiniteGroup {
	return m.target
}

// Values returns a copy of the underlying index sequence.
func (m Mapping) Values() []Element {
	return slices.Clone(m.mapping)
}

// Of evaluates the mapping at x.
func (m Mapping) Of(x Element) Element {
	return m.mapping[x]
}

// Homomorphism checks target.Op(f(a), f(b)) = f(source.Op(a, b)) for every ordered pair.
// Both groups must be actual groups.
func (m Mapping) Homomorphism() bool {
	for a := range m.source.Size() {
		for b := range m.source.Size() {
			x, y := Element(a), Element(b)
			if m.target.Op(m.Of(x), m.Of(y)) != m.Of(m.source.Op(x, y)) {
				return false
			}
		}
	}
	return true
}

// Cocycle checks the crossed homomorphism identity f(ab) = α(a)(f(b)) · f(a) for
// every ordered pair, where · is the target's operation and α is action.
// Under the trivial action it is equivalent to Homomorphism.
func (m Mapping) Cocycle(action GroupAction) bool {
	for a := range m.source.Size() {
		for b := range m.source.Size() {
			x, y := Element(a), Element(b)
			if m.Of(m.source.Op(x, y)) != m.target.Op(action.Of(x).Of(m.Of(y)), m.Of(x)) {
				return false
			}
		}
	}
	return true
}

// Bijective checks that source and target have the same size and that the graph of
// the mapping contains a perfect matching between them.
func (m Mapping) Bijective() bool {
	if m.source.Size() != m.target.Size() {
		return false
	}

	// Build neighbors predicate based on the graph of the mapping
	neighbors := func(xAny any, yAny any) (bool, error) {
		return m.Of(xAny.(Element)) == yAny.(Element), nil
	}

	// Transform sources and targets to slices of any
	toAny := func(element Element, _ int) any { return element }
	sourcesAny, targetsAny := lo.Map(m.source.Elements(), toAny), lo.Map(m.target.Elements(), toAny)

	graph, err := bipartitegraph.NewBipartiteGraph(sourcesAny, targetsAny, neighbors)
	if err != nil {
		return false
	}

	return len(graph.LargestMatching()) == len(sourcesAny)
}

// Automorphism checks that m is a bijective homomorphism between groups of the same size.
func (m Mapping) Automorphism() bool {
	return m.source.Size() == m.target.Size() && m.Homomorphism() && m.Bijective()
}

// Compose returns m∘other, i.e. x ↦ m.Of(other.Of(x)).
func (m Mapping) Compose(other Mapping) (Mapping, error) {
	if other.target.Size() != m.source.Size() {
		return Mapping{}, fmt.Errorf("cannot compose a mapping into a group of size %d with a mapping from a group of size %d: %w", other.target.Size(), m.source.Size(), ErrInvalidMapping)
	}

	values := lo.Map(other.mapping, func(x Element, _ int) Element { return m.Of(x) })
	return Mapping{source: other.source, target: m.target, mapping: values}, nil
}

// Equal reports whether m and other map between groups of the same sizes and agree on every element.
// The group tables themselves are not compared.
func (m Mapping) Equal(other Mapping) bool {
	return m.source.Size() == other.source.Size() &&
		m.target.Size() == other.target.Size() &&
		slices.Equal(m.mapping, other.mapping)
}

func (m Mapping) String() string {
	return fmt.Sprint(Uint64s(m.mapping))
}
