package algebra

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// FiniteGroup is an immutable finite group given by its Cayley table:
// table[a][b] is the index of a∘b.
//
// The zero value is the placeholder group of size 0. It stands for a domain or
// codomain that carries no meaning and must not be operated on.
type FiniteGroup struct {
	table [][]Element
}

// NewFiniteGroup builds a group from a literal Cayley table. The table is copied.
// It fails with ErrInvalidGroupTable if the table is not square or an entry is
// out of range. Group axioms are not checked.
func NewFiniteGroup(table [][]Element) (FiniteGroup, error) {
	size := uint64(len(table))
	for i, row := range table {
		if uint64(len(row)) != size {
			return FiniteGroup{}, fmt.Errorf("row %d has %d entries, expected %d: %w", i, len(row), size, ErrInvalidGroupTable)
		}
		for j, entry := range row {
			if uint64(entry) >= size {
				return FiniteGroup{}, fmt.Errorf("entry (%d, %d) = %d is out of range [0, %d): %w", i, j, entry, size, ErrInvalidGroupTable)
			}
		}
	}

	return newFiniteGroup(cloneTable(table)), nil
}

// Trusted constructor, the table is owned by the group afterwards
func newFiniteGroup(table [][]Element) FiniteGroup {
	return FiniteGroup{table: table}
}

func (group FiniteGroup) Size() uint64 {
	return uint64(len(group.table))
}

// Elements returns the element range [0, Size()).
func (group FiniteGroup) Elements() []Element {
	return lo.RangeFrom(Element(0), len(group.table))
}

// IsPlaceholder reports whether group is the placeholder group.
func (group FiniteGroup) IsPlaceholder() bool {
	return len(group.table) == 0
}

// Op returns a∘b. Indices out of range panic.
func (group FiniteGroup) Op(a, b Element) Element {
	return group.table[a][b]
}

// Commutative checks every unordered pair of distinct elements exactly once.
func (group FiniteGroup) Commutative() bool {
	for a := range group.Size() {
		for b := a + 1; b < group.Size(); b++ {
			if group.Op(Element(a), Element(b)) != group.Op(Element(b), Element(a)) {
				return false
			}
		}
	}
	return true
}

// Identity returns the first element acting as a two-sided identity.
func (group FiniteGroup) Identity() (Element, bool) {
	elements := group.Elements()
	return lo.Find(elements, func(e Element) bool {
		return lo.EveryBy(elements, func(x Element) bool {
			return group.Op(e, x) == x && group.Op(x, e) == x
		})
	})
}

// Inverse returns the first y with x∘y = y∘x = e.
func (group FiniteGroup) Inverse(x Element) (Element, bool) {
	identity, ok := group.Identity()
	if !ok {
		return 0, false
	}
	return lo.Find(group.Elements(), func(y Element) bool {
		return group.Op(x, y) == identity && group.Op(y, x) == identity
	})
}

// Table returns a copy of the Cayley table.
func (group FiniteGroup) Table() [][]Element {
	return cloneTable(group.table)
}

func (group FiniteGroup) Equal(other FiniteGroup) bool {
	return slices.EqualFunc(group.table, other.table, slices.Equal[[]Element])
}

func cloneTable(table [][]Element) [][]Element {
	return lo.Map(table, func(row []Element, _ int) []Element { return slices.Clone(row) })
}
