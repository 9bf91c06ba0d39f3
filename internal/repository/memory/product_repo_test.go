package memory

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartcraft/backend/pkg/e"
)

func TestSeedCatalogSize(t *testing.T) {
	assert.Len(t, SeedProducts(), 12)
}

func TestList_FirstPage(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)

	require.Len(t, page, 10)
	assert.Equal(t, int64(1), page[0].ID)
	assert.Equal(t, "Smartphone X1", page[0].Name)
	assert.Equal(t, int64(10), page[9].ID)
}

func TestList_LastPartialPage(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), 10, 10)
	require.NoError(t, err)

	require.Len(t, page, 2)
	assert.Equal(t, int64(11), page[0].ID)
	assert.Equal(t, int64(12), page[1].ID)
}

func TestList_TailSlice(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), 2, 11)
	require.NoError(t, err)

	require.Len(t, page, 1)
	assert.Equal(t, "Coffee Maker Deluxe", page[0].Name)
}

func TestList_HugeLimitDoesNotOverflow(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), math.MaxInt64, 1)
	require.NoError(t, err)

	require.Len(t, page, 11)
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(12), page[10].ID)
}

func TestList_OutOfRangeSkip(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), 5, 50)
	require.NoError(t, err)

	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestList_ReturnsCopy(t *testing.T) {
	repo := NewSeededProductRepo()

	page, err := repo.List(context.Background(), 1, 0)
	require.NoError(t, err)
	page[0].Name = "mutated"

	again, err := repo.List(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone X1", again[0].Name)
}

func TestGetByID(t *testing.T) {
	repo := NewSeededProductRepo()

	product, err := repo.GetByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Maker Deluxe", product.Name)
	assert.Equal(t, 129.99, product.Price)

	_, err = repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetByIDs_SkipsMissing(t *testing.T) {
	repo := NewSeededProductRepo()

	products, err := repo.GetByIDs(context.Background(), []int64{2, 999, 5})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(2), products[0].ID)
	assert.Equal(t, int64(5), products[1].ID)
}
