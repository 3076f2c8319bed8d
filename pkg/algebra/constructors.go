package algebra

import (
	"fmt"
	"slices"

	"github.com/limaJavier/cohomology/pkg/combinatorics"
	"github.com/samber/lo"
)

// CyclicGroup builds Z/nZ with table[i][j] = (i+j) mod n. Element i is the residue i.
func CyclicGroup(n uint64) FiniteGroup {
	if n == 0 {
		panic("cyclic group of order 0 does not exist")
	}

	table := make([][]Element, n)
	for i := range n {
		table[i] = make([]Element, n)
		for j := range n {
			table[i][j] = Element((i + j) % n)
		}
	}
	return newFiniteGroup(table)
}

// Permutations returns the permutations of {0, ..., n-1} in the order used to index
// the elements of SymmetricGroup(n).
func Permutations(n uint64) [][]uint64 {
	return slices.Collect(combinatorics.Permutations(n))
}

// SymmetricGroup builds the symmetric group on n letters. Element i is the i-th
// permutation of Permutations(n), and i∘j is the permutation p3 with
// p3[k] = p_i[p_j[k]] (p_j is applied first).
func SymmetricGroup(n uint64) FiniteGroup {
	permutations := Permutations(n)

	// Every permutation is a tuple of n letters, hence it has a unique index among all the n^n tuples
	indexer := combinatorics.NewIndexer(slices.Repeat([]uint64{n}, int(n))...)
	indices := make(map[uint64]Element, len(permutations))
	for i, permutation := range permutations {
		indices[indexer.Index(permutation...)] = Element(i)
	}

	table := make([][]Element, len(permutations))
	for i, p1 := range permutations {
		table[i] = make([]Element, len(permutations))
		for j, p2 := range permutations {
			p3 := lo.Map(p2, func(k uint64, _ int) uint64 { return p1[k] })
			table[i][j] = indices[indexer.Index(p3...)]
		}
	}
	return newFiniteGroup(table)
}

// PermutationSign returns 1 for even permutations and -1 for odd ones.
func PermutationSign(permutation []uint64) int {
	inversions := 0
	for i := range permutation {
		for j := i + 1; j < len(permutation); j++ {
			if permutation[i] > permutation[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

// ProductGroup is the external direct product of two groups. The pair (g, h) is
// the element g*|H| + h.
type ProductGroup struct {
	FiniteGroup
	first, second FiniteGroup
	indexer       combinatorics.Indexer
}

// DirectProduct builds G×H with the componentwise operation.
func DirectProduct(g, h FiniteGroup) ProductGroup {
	product := ProductGroup{
		first:   g,
		second:  h,
		indexer: combinatorics.NewIndexer(h.Size(), g.Size()),
	}

	size := g.Size() * h.Size()
	table := make([][]Element, size)
	for x := range size {
		table[x] = make([]Element, size)
		g1, h1 := product.Components(Element(x))
		for y := range size {
			g2, h2 := product.Components(Element(y))
			table[x][y] = product.Pair(g.Op(g1, g2), h.Op(h1, h2))
		}
	}
	product.FiniteGroup = newFiniteGroup(table)

	return product
}

// Pair returns the element encoding (g, h).
func (product ProductGroup) Pair(g, h Element) Element {
	return Element(product.indexer.Index(uint64(h), uint64(g)))
}

// Components returns the pair (g, h) encoded by x.
func (product ProductGroup) Components(x Element) (g Element, h Element) {
	attributes := product.indexer.Attributes(uint64(x))
	return Element(attributes[1]), Element(attributes[0])
}

func (product ProductGroup) Factors() (FiniteGroup, FiniteGroup) {
	return product.first, product.second
}

// ConstantMapping maps every source element to element. target may be the placeholder group.
func ConstantMapping(source, target FiniteGroup, element Element) Mapping {
	return Mapping{
		source:  source,
		target:  target,
		mapping: slices.Repeat([]Element{element}, int(source.Size())),
	}
}

// IdentityMapping is the identity of group.
func IdentityMapping(group FiniteGroup) Mapping {
	return Mapping{source: group, target: group, mapping: group.Elements()}
}

// NewNegationMapping maps every element to its inverse. It is an automorphism if and only if group is commutative.
func NewNegationMapping(group FiniteGroup) (Mapping, error) {
	values := make([]Element, 0, group.Size())
	for _, x := range group.Elements() {
		inverse, ok := group.Inverse(x)
		if !ok {
			return Mapping{}, fmt.Errorf("element %d: %w", x, ErrNoInverse)
		}
		values = append(values, inverse)
	}
	return Mapping{source: group, target: group, mapping: values}, nil
}

// NegationMapping is like NewNegationMapping but panics if some element has no inverse.
func NegationMapping(group FiniteGroup) Mapping {
	mapping, err := NewNegationMapping(group)
	if err != nil {
		panic(fmt.Sprintf("cannot build negation mapping: %v", err))
	}
	return mapping
}

// ConstantAction lets every source element act on target through the same automorphism.
func ConstantAction(source, target FiniteGroup, automorphism Mapping) (GroupAction, error) {
	return NewGroupAction(source, target, slices.Repeat([]Mapping{automorphism}, int(source.Size())))
}

// TrivialAction lets every source element act on target as the identity.
func TrivialAction(source, target FiniteGroup) GroupAction {
	action, err := ConstantAction(source, target, IdentityMapping(target))
	if err != nil {
		panic(fmt.Sprintf("cannot build trivial action: %v", err))
	}
	return action
}
