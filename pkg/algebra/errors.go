package algebra

import "errors"

var (
	// ErrInvalidGroupTable is returned when a Cayley table is not square or holds an entry out of range.
	ErrInvalidGroupTable = errors.New("algebra: invalid group table")

	// ErrInvalidMapping is returned when a mapping has the wrong length, a value out of range or mismatched groups.
	ErrInvalidMapping = errors.New("algebra: invalid mapping")

	// ErrActionSizeMismatch is returned when an action does not provide exactly one mapping per source element.
	ErrActionSizeMismatch = errors.New("algebra: action size mismatch")

	// ErrNotAutomorphism is returned by strict action validation when an entry is not an automorphism.
	ErrNotAutomorphism = errors.New("algebra: not an automorphism")

	// ErrNoInverse is returned when an element has no inverse in a table, e.g. because the table has no identity.
	ErrNoInverse = errors.New("algebra: element has no inverse")

	// ErrIncompatibleAction is returned by strict action validation when α(ab) differs from α(a)∘α(b).
	ErrIncompatibleAction = errors.New("algebra: incompatible action")
)
