package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/item-service/internal/model"
)

// testItemStore runs the ItemStore contract against an implementation.
// newStore must return an empty store.
func testItemStore(t *testing.T, newStore func(t *testing.T) ItemStore) {
	t.Run("CreateItem", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		item, err := store.Create(ctx, "Test Item", "Test Description")
		require.NoError(t, err)

		assert.NotZero(t, item.ID)
		assert.Equal(t, "Test Item", item.Name)
		assert.Equal(t, "Test Description", item.Description)

		fetched, found, err := store.Get(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, item, fetched)
	})

	t.Run("CreateItemAssignsDistinctIDs", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		seen := map[int64]bool{}
		for i := 0; i < 5; i++ {
			item, err := store.Create(ctx, "same", "same")
			require.NoError(t, err)
			assert.False(t, seen[item.ID], "id %d assigned twice", item.ID)
			seen[item.ID] = true
		}
	})

	t.Run("CreateItemAcceptsEmptyStrings", func(t *testing.T) {
		store := newStore(t)

		item, err := store.Create(context.Background(), "", "")
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
	})

	t.Run("ListItems", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)

		first, err := store.Create(ctx, "Item 1", "First item")
		require.NoError(t, err)
		second, err := store.Create(ctx, "Item 2", "Second item")
		require.NoError(t, err)

		items, err = store.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []model.Item{first, second}, items)
	})

	t.Run("GetItemNotFound", func(t *testing.T) {
		store := newStore(t)

		item, found, err := store.Get(context.Background(), 999)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, item)
	})

	t.Run("UpdateItem", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		item, err := store.Create(ctx, "Item 1", "Old Description")
		require.NoError(t, err)

		updated, found, err := store.Update(ctx, item.ID, "Updated Item", "Updated Description")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, item.ID, updated.ID)
		assert.Equal(t, "Updated Item", updated.Name)
		assert.Equal(t, "Updated Description", updated.Description)

		fetched, found, err := store.Get(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, updated, fetched)
	})

	t.Run("UpdateItemNotFound", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, found, err := store.Update(ctx, 999, "Non-existent Item", "Non-existent Description")
		require.NoError(t, err)
		assert.False(t, found)

		items, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("DeleteItem", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		item, err := store.Create(ctx, "Item to Delete", "Item description")
		require.NoError(t, err)

		deleted, found, err := store.Delete(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, item, deleted)

		_, found, err = store.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("DeleteItemNotFound", func(t *testing.T) {
		store := newStore(t)

		_, found, err := store.Delete(context.Background(), 999)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("ConcurrentUpdatesLastWriteWins", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		item, err := store.Create(ctx, "start", "start")
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := store.Update(ctx, item.ID, "writer", "writer")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		fetched, found, err := store.Get(ctx, item.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, item.ID, fetched.ID)
		assert.Equal(t, "writer", fetched.Name)
	})
}
