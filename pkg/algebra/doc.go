// Package algebra represents finite groups by explicit Cayley tables, together
// with the maps between them that the cohomology engine needs.
//
// Element identity is purely positional: an [Element] is an index into the
// element range [0, N) of the group it was taken from. Nothing prevents mixing
// indices of different groups, so callers must keep track of where an element
// belongs.
//
// Three read-only values make up the model:
//
//   - [FiniteGroup]: a Cayley table, trusted to describe a genuine group
//   - [Mapping]: a set function between the element ranges of two groups
//   - [GroupAction]: one target-to-target [Mapping] per source element
//
// Constructors validate shapes and ranges and fail with the sentinel errors of
// this package. Predicates such as [Mapping.Cocycle] do not validate anything;
// they are evaluated pointwise by table lookup and short-circuit on the first
// violation.
//
// # Element ordering
//
// [CyclicGroup] indexes its elements by residue. [SymmetricGroup] indexes
// permutations in lexicographic order, which is an artifact of the enumeration
// rather than a canonical presentation order. Actions keyed to symmetric group
// indices must either reproduce that order (see [Permutations]) or be derived
// from permutation semantics (see [PermutationSign]).
package algebra
