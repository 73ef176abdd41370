package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexDeterministic(t *testing.T) {
	for key := -100; key < 100; key++ {
		require.Equal(t, Index(key, 16), Index(key, 16))
	}
}

func TestIndexInRange(t *testing.T) {
	for _, modulus := range []int{1, 2, 7, 16, 1024} {
		for key := -1000; key < 1000; key++ {
			index := Index(key, modulus)
			require.GreaterOrEqual(t, index, 0)
			require.Less(t, index, modulus)
		}
	}
}

func TestIndexSpread(t *testing.T) {
	modulus := 16
	hits := make(map[int]int)
	n := 1 << 12
	for key := 0; key < n; key++ {
		hits[Index(key, modulus)]++
	}
	require.Equal(t, modulus, len(hits))
	for index, count := range hits {
		// sequential keys should land in every bucket in roughly
		// equal proportion, allow 2x skew
		require.Less(t, count, 2*n/modulus, "bucket %d overloaded", index)
	}
}
