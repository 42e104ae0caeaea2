package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepositoryList(t *testing.T) {
	repo := NewCatalogRepository(nil, 0)

	colleges := repo.List(context.Background())
	require.NotEmpty(t, colleges)
	assert.Len(t, colleges, len(defaultCatalog))

	// List hands out a copy; mutating it must not touch the catalog.
	colleges[0].Name = "mutated"
	again := repo.List(context.Background())
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestCatalogRepositoryFindByName(t *testing.T) {
	repo := NewCatalogRepository(nil, 0)

	college, ok := repo.FindByName(context.Background(), "New York University")
	require.True(t, ok)
	assert.Equal(t, "3.7", college.GPAAvg)
	assert.Equal(t, "1390 - 1540", college.SATRange)
	assert.Equal(t, "12%", college.AdmitRate)

	_, ok = repo.FindByName(context.Background(), "Unknown College")
	assert.False(t, ok)

	// Matching is exact, not case-insensitive.
	_, ok = repo.FindByName(context.Background(), "new york university")
	assert.False(t, ok)
}
