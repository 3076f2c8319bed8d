package combinatorics

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	scenarios := [][]uint64{
		{3, 3, 3},
		{2, 6},
		{6, 2},
		{1, 4, 5},
		{7},
	}

	for _, scenario := range scenarios {
		// Act
		indexer := NewIndexer(scenario...)

		indices := make([]uint64, 0, indexer.Size())
		for tuple := range NewProductGenerator(scenario...).Products() {
			indices = append(indices, indexer.Index(tuple...))
		}

		// Assert
		for _, index := range indices {
			assert.Equal(t, index, indexer.Index(indexer.Attributes(index)...))
		}
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		domains := make([]uint64, rand.Intn(4)+1)
		for i := range domains {
			domains[i] = uint64(rand.Intn(6) + 1)
		}

		// Act
		indexer := NewIndexer(domains...)

		// Assert
		for index := range indexer.Size() {
			attributes := indexer.Attributes(index)
			for i, attribute := range attributes {
				assert.Less(t, attribute, domains[i])
			}
			assert.Equal(t, index, indexer.Index(attributes...))
		}
	}
}

func TestIntegerConstraints(t *testing.T) {
	// Arrange
	domains := []uint64{4, 3, 5}
	indexer := NewIndexer(domains...)

	// Act
	indices := make([]uint64, 0, indexer.Size())
	for tuple := range NewProductGenerator(domains...).Products() {
		indices = append(indices, indexer.Index(tuple...))
	}
	slices.Sort(indices)

	// Assert
	assert.Equal(t, uint64(60), indexer.Size())
	assert.Len(t, indices, 60)
	for i, index := range indices {
		// Indices are a contiguous range starting at zero
		assert.Equal(t, uint64(i), index)
	}
}

func TestFirstAttributeIsLeastSignificant(t *testing.T) {
	indexer := NewIndexer(6, 2)

	assert.Equal(t, uint64(0), indexer.Index(0, 0))
	assert.Equal(t, uint64(5), indexer.Index(5, 0))
	assert.Equal(t, uint64(6), indexer.Index(0, 1))
	assert.Equal(t, []uint64{3, 1}, indexer.Attributes(9))
}
