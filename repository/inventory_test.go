package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryRepository_CreateIfMissing_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewInventoryRepository(db)
	ctx := context.Background()

	created, err := repo.CreateIfMissing(ctx, "Milk", "Dairy")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfMissing(ctx, "Milk", "Dairy")
	require.NoError(t, err)
	assert.False(t, created)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Dairy", items[0].Category)
}
