package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// fakeSource fuente de catálogo en memoria para tests
type fakeSource struct {
	menu      []*entity.MenuItem
	inventory []*entity.InventoryItem
	menuErr   error
	invErr    error
	fetches   int
}

func (f *fakeSource) FetchMenu(_ context.Context) ([]*entity.MenuItem, error) {
	f.fetches++
	if f.menuErr != nil {
		return nil, f.menuErr
	}
	return f.menu, nil
}

func (f *fakeSource) FetchInventory(_ context.Context) ([]*entity.InventoryItem, error) {
	if f.invErr != nil {
		return nil, f.invErr
	}
	return f.inventory, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		menu: []*entity.MenuItem{
			{ID: "M1", Name: "Brown Sugar Boba Milk", Price: decimal.RequireFromString("3.50"), Ingredients: entity.IngredientList{11}, DrinkOrder: 1},
			{ID: "M2", Name: "Boba Milk Tea", Price: decimal.RequireFromString("4.25"), DrinkOrder: 2},
		},
		inventory: []*entity.InventoryItem{
			{ID: 11, Name: "Boba", Quantity: 100, Price: decimal.RequireFromString("0.30")},
		},
	}
}

func TestCatalogCacheLoadAndLookup(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Load(context.Background()))

	item, ok := cache.FindMenuItem("M1")
	require.True(t, ok)
	assert.Equal(t, "Brown Sugar Boba Milk", item.Name)

	_, ok = cache.FindMenuItem("M9")
	assert.False(t, ok)

	ingredient, ok := cache.FindInventoryItem(11)
	require.True(t, ok)
	assert.Equal(t, "Boba", ingredient.Name)

	_, ok = cache.FindInventoryItem(99)
	assert.False(t, ok)

	// Los snapshots conservan el orden de la fuente
	menu := cache.Menu()
	require.Len(t, menu, 2)
	assert.Equal(t, "M1", menu[0].ID)
	assert.Equal(t, "M2", menu[1].ID)
	assert.Len(t, cache.Inventory(), 1)
}

func TestCatalogCacheEmptyBeforeLoad(t *testing.T) {
	t.Parallel()

	cache := NewCatalogCache(newFakeSource())

	_, ok := cache.FindMenuItem("M1")
	assert.False(t, ok)
	assert.Empty(t, cache.Menu())
	assert.Empty(t, cache.Inventory())
}

func TestCatalogCacheLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Load(context.Background()))

	source.menuErr = errors.New("connection refused")
	err := cache.Refresh(context.Background())
	require.Error(t, err)

	// El snapshot anterior sigue sirviendo lookups
	_, ok := cache.FindMenuItem("M1")
	assert.True(t, ok)
}

func TestCatalogCacheRefreshPicksUpMutations(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	cache := NewCatalogCache(source)
	require.NoError(t, cache.Load(context.Background()))

	source.menu = append(source.menu, &entity.MenuItem{ID: "M3", Name: "Taro Milk", Price: decimal.RequireFromString("4.75"), DrinkOrder: 3})
	require.NoError(t, cache.Refresh(context.Background()))

	_, ok := cache.FindMenuItem("M3")
	assert.True(t, ok)
	assert.Equal(t, 2, source.fetches)
}
