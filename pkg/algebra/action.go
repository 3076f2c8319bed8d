package algebra

import (
	"fmt"
	"slices"
)

// GroupAction assigns to every element of source a mapping from target to target,
// intended to be an automorphism of target.
type GroupAction struct {
	source  FiniteGroup
	target  FiniteGroup
	mapping []Mapping
}

// NewGroupAction checks that there is exactly one mapping per source element and that
// every mapping goes from target to target (by size). Whether the mappings are
// automorphisms and whether they respect source's operation is left to Validate.
func NewGroupAction(source, target FiniteGroup, mapping []Mapping) (GroupAction, error) {
	if uint64(len(mapping)) != source.Size() {
		return GroupAction{}, fmt.Errorf("%d mappings for a source of size %d: %w", len(mapping), source.Size(), ErrActionSizeMismatch)
	}
	for i, automorphism := range mapping {
		if automorphism.source.Size() != target.Size() || automorphism.target.Size() != target.Size() {
			return GroupAction{}, fmt.Errorf("mapping %d goes from size %d to size %d, expected %d: %w", i, automorphism.source.Size(), automorphism.target.Size(), target.Size(), ErrInvalidMapping)
		}
	}

	return GroupAction{source: source, target: target, mapping: slices.Clone(mapping)}, nil
}

func (action GroupAction) Source() FiniteGroup {
	return action.source
}

func (action GroupAction) Target() FiniteGroup {
	return action.target
}

// Of returns the mapping associated to source element x.
func (action GroupAction) Of(x Element) Mapping {
	return action.mapping[x]
}

// Validate is an optional strict pass: every mapping must be an automorphism of target
// and α(ab) must equal α(a)∘α(b) for every pair of source elements.
func (action GroupAction) Validate() error {
	for i, automorphism := range action.mapping {
		if !automorphism.Automorphism() {
			return fmt.Errorf("mapping of source element %d %v: %w", i, automorphism, ErrNotAutomorphism)
		}
	}

	for a := range action.source.Size() {
		for b := range action.source.Size() {
			x, y := Element(a), Element(b)
			composition, err := action.Of(x).Compose(action.Of(y))
			if err != nil {
				return err
			}
			if !composition.Equal(action.Of(action.source.Op(x, y))) {
				return fmt.Errorf("α(%d∘%d) differs from α(%d)∘α(%d): %w", x, y, x, y, ErrIncompatibleAction)
			}
		}
	}

	return nil
}
