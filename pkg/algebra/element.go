package algebra

import "github.com/samber/lo"

// Element is the index of a group element within its group's element range.
type Element uint64

// ElementsOf converts raw indices into elements.
func ElementsOf(values ...uint64) []Element {
	return lo.Map(values, func(value uint64, _ int) Element { return Element(value) })
}

// Uint64s converts elements back into raw indices.
func Uint64s(elements []Element) []uint64 {
	return lo.Map(elements, func(element Element, _ int) uint64 { return uint64(element) })
}
