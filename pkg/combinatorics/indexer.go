package combinatorics

// Indexer is designed to give a unique index to a combination of attributes and vice versa.
// The first attribute is the least significant one.
type Indexer interface {
	// Returns a unique index to a combination of attributes
	Index(attributes ...uint64) uint64
	// Returns a combination of attributes from a unique index
	Attributes(index uint64) []uint64
	// Returns the amount of distinct indices (i.e. the product of all domains)
	Size() uint64
}

// Every domain must be greater than zero
func NewIndexer(domains ...uint64) Indexer {
	return &indexerImplementation{
		domains: append([]uint64(nil), domains...),
	}
}
