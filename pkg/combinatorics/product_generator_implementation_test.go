package combinatorics

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(generator ProductGenerator, constraints []func(tuple []uint64) bool) [][]uint64 {
	tuples := make([][]uint64, 0)
	for tuple := range generator.ConstrainedProducts(constraints) {
		tuples = append(tuples, tuple)
	}
	return tuples
}

func TestProducts(t *testing.T) {
	t.Run("Lexicographic order", func(t *testing.T) {
		//** Arrange
		generator := NewProductGenerator(2, 3)

		//** Act
		tuples := collect(generator, nil)

		//** Assert
		assert.Equal(t, [][]uint64{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
		}, tuples)
	})

	t.Run("Size is the product of the domains", func(t *testing.T) {
		scenarios := [][]uint64{{6, 6}, {2, 2, 2, 2}, {1}, {5, 1, 3}}
		for _, scenario := range scenarios {
			expected := NewIndexer(scenario...).Size()
			assert.Len(t, collect(NewProductGenerator(scenario...), nil), int(expected))
		}
	})

	t.Run("No domains yield the empty tuple", func(t *testing.T) {
		tuples := collect(NewProductGenerator(), nil)
		assert.Len(t, tuples, 1)
		assert.Empty(t, tuples[0])
	})

	t.Run("Empty domain yields nothing", func(t *testing.T) {
		assert.Empty(t, collect(NewProductGenerator(3, 0, 2), nil))
	})

	t.Run("Yielded tuples are not shared", func(t *testing.T) {
		tuples := collect(NewProductGenerator(2, 2), nil)
		tuples[0][0] = 7
		assert.Equal(t, []uint64{0, 1}, tuples[1])
	})

	t.Run("Restartable by ranging again", func(t *testing.T) {
		generator := NewProductGenerator(3, 2)
		assert.Equal(t, collect(generator, nil), collect(generator, nil))
	})
}

func TestConstrainedProducts(t *testing.T) {
	t.Run("Constraints prune tuples", func(t *testing.T) {
		//** Arrange
		generator := NewProductGenerator(3, 3)
		constraints := []func(tuple []uint64) bool{
			func(tuple []uint64) bool {
				return tuple[1] == Unassigned || tuple[1] == 1
			},
		}

		//** Act
		tuples := collect(generator, constraints)

		//** Assert
		assert.Equal(t, [][]uint64{{0, 1}, {1, 1}, {2, 1}}, tuples)
	})

	t.Run("Pruned prefixes are never extended", func(t *testing.T) {
		//** Arrange
		generator := NewProductGenerator(4, 4, 4)
		evaluations := 0
		constraints := []func(tuple []uint64) bool{
			func(tuple []uint64) bool {
				evaluations++
				return tuple[0] == 0
			},
		}

		//** Act
		tuples := collect(generator, constraints)

		//** Assert
		assert.Len(t, tuples, 16)
		// 4 evaluations at the first position, 4 + 16 for the extensions of the only surviving prefix
		assert.Equal(t, 4+4+16, evaluations)
	})

	t.Run("Stopping the iteration stops the search", func(t *testing.T) {
		//** Arrange
		generator := NewProductGenerator(10, 10, 10)
		visited := 0

		//** Act
		for range generator.Products() {
			visited++
			if visited == 5 {
				break
			}
		}

		//** Assert
		assert.Equal(t, 5, visited)
	})
}

func TestPermutations(t *testing.T) {
	t.Run("Lexicographic order", func(t *testing.T) {
		permutations := slices.Collect(Permutations(3))

		assert.Equal(t, [][]uint64{
			{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
		}, permutations)
	})

	t.Run("Factorial amount", func(t *testing.T) {
		factorial := 1
		for n := range uint64(6) {
			if n > 0 {
				factorial *= int(n)
			}
			permutations := slices.Collect(Permutations(n))
			assert.Len(t, permutations, factorial)
			assert.True(t, slices.IsSortedFunc(permutations, slices.Compare[[]uint64]))
		}
	})
}

func TestDistinct(t *testing.T) {
	assert.True(t, Distinct([]uint64{}))
	assert.True(t, Distinct([]uint64{2, 0, Unassigned, Unassigned}))
	assert.False(t, Distinct([]uint64{1, 1, Unassigned}))
	assert.False(t, Distinct([]uint64{0, 2, 0}))
}
