package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoff-engine/domain"
)

func TestHistoryRepositoryMemory_ListNewestFirst(t *testing.T) {
	repo := NewHistoryRepositoryMemory(10)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(domain.CalculationRecord{ID: fmt.Sprint(i), Kind: domain.KindAmortization}))
	}

	records, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, "1", records[1].ID)

	records, err = repo.List(0)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestHistoryRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewHistoryRepositoryMemory(2)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(domain.CalculationRecord{ID: fmt.Sprint(i)}))
	}

	records, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "4", records[0].ID)
	assert.Equal(t, "3", records[1].ID)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v"))
	val, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}
