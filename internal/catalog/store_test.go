package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background())
	require.NoError(t, err)
	return store
}

func TestSeedReferentialIntegrity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, products, err := store.Products(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 6)

	for _, p := range products {
		producer, err := store.Producer(ctx, p.ProducerID)
		require.NoError(t, err, "product %s references producer %s", p.ID, p.ProducerID)
		require.NotEmpty(t, producer.Name)
		require.GreaterOrEqual(t, p.Price, 0.0)
		require.GreaterOrEqual(t, p.Stock, 0)
		require.NotEmpty(t, p.Images)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, a.DB().WithContext(ctx).Exec("DELETE FROM products").Error)

	_, products, err := b.Products(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 6)
}

func TestProductNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Product(context.Background(), "999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProductsCategoryFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	total, products, err := store.Products(ctx, ProductFilter{Category: "Hortaliças"})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	for _, p := range products {
		require.Equal(t, "Hortaliças", p.Category)
	}

	// "Todas" disables the category filter.
	total, _, err = store.Products(ctx, ProductFilter{Category: "Todas"})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
}

func TestProductsProducerFilter(t *testing.T) {
	store := newTestStore(t)

	total, products, err := store.Products(context.Background(), ProductFilter{ProducerID: "2"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Equal(t, "3", products[0].ID)
	require.Equal(t, "4", products[1].ID)
}

func TestProductsPagination(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	total, page1, err := store.Products(ctx, ProductFilter{Offset: 0, Limit: 4})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
	require.Len(t, page1, 4)

	_, page2, err := store.Products(ctx, ProductFilter{Offset: 4, Limit: 4})
	require.NoError(t, err)
	require.Len(t, page2, 2)
}

func TestRelatedSameCategoryExcludesSelf(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tomato, err := store.Product(ctx, "1")
	require.NoError(t, err)

	related, err := store.Related(ctx, tomato)
	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, p := range related {
		require.Equal(t, tomato.Category, p.Category)
		require.NotEqual(t, tomato.ID, p.ID)
	}
}

func TestFeaturedLimits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	products, err := store.FeaturedProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
	for _, p := range products {
		require.True(t, p.Featured)
	}

	producers, err := store.FeaturedProducers(ctx)
	require.NoError(t, err)
	require.Len(t, producers, 2)
	for _, p := range producers {
		require.True(t, p.Featured)
	}
}

func TestProductsByID(t *testing.T) {
	store := newTestStore(t)

	byID, err := store.ProductsByID(context.Background(), []string{"1", "2", "ghost"})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	require.Equal(t, "Tomate Cereja Orgânico", byID["1"].Name)
	_, ok := byID["ghost"]
	require.False(t, ok)
}

func TestSearchLike(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	total, products, err := store.SearchLike(ctx, "Mel", 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Mel Silvestre", products[0].Name)

	total, _, err = store.SearchLike(ctx, "nada-disso", 0, 10)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCategoriesListStartsWithTodas(t *testing.T) {
	require.Equal(t, "Todas", Categories[0])
	require.Len(t, Categories, 5)
}
