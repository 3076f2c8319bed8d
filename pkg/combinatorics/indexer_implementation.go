package combinatorics

import "github.com/samber/lo"

type indexerImplementation struct {
	domains []uint64
}

func (indexer *indexerImplementation) Index(attributes ...uint64) uint64 {
	index, weight := uint64(0), uint64(1)
	for i, attribute := range attributes {
		index += weight * attribute
		weight *= indexer.domains[i]
	}
	return index
}

func (indexer *indexerImplementation) Attributes(index uint64) []uint64 {
	attributes := make([]uint64, len(indexer.domains))
	for i, domain := range indexer.domains {
		attributes[i] = index % domain
		index = index / domain
	}
	return attributes
}

func (indexer *indexerImplementation) Size() uint64 {
	return lo.Reduce(indexer.domains, func(size uint64, domain uint64, _ int) uint64 {
		return size * domain
	}, 1)
}
