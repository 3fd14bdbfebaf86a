package jury

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampler_DeterministicForSeed(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	first := NewSampler(rand.NewSource(7)).Sample(pool, 3)
	second := NewSampler(rand.NewSource(7)).Sample(pool, 3)

	require.Equal(t, first, second)
}

func TestSampler_BoundedAndUnique(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	sample := NewSampler(rand.NewSource(1)).Sample(pool, 4)
	require.Len(t, sample, 4)

	seen := map[string]bool{}
	for _, id := range sample {
		require.Contains(t, pool, id)
		require.False(t, seen[id], "duplicate pick %s", id)
		seen[id] = true
	}
}

func TestSampler_PoolSmallerThanRequest(t *testing.T) {
	pool := []string{"a", "b", "c"}

	sample := NewSampler(rand.NewSource(1)).Sample(pool, 5)
	require.ElementsMatch(t, pool, sample)
}

func TestSampler_DoesNotMutatePool(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	NewSampler(rand.NewSource(1)).Sample(pool, 4)
	require.Equal(t, []string{"a", "b", "c", "d"}, pool)
}

func TestSampler_EmptyCases(t *testing.T) {
	s := NewSampler(rand.NewSource(1))

	require.Nil(t, s.Sample(nil, 3))
	require.Nil(t, s.Sample([]string{"a"}, 0))
}
