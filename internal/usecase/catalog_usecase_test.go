package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
)

// fakeProductRepo хранит товары в срезе, как статический каталог.
type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) List(_ context.Context, limit, skip int64) ([]domain.Product, error) {
	total := int64(len(f.products))
	if skip >= total {
		return []domain.Product{}, nil
	}

	end := total
	if limit < total-skip {
		end = skip + limit
	}

	return f.products[skip:end], nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			return &product, nil
		}
	}

	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, err := f.GetByID(context.Background(), id); err == nil {
			result = append(result, *product)
		}
	}

	return result, nil
}

func newTestCatalogUC(products []domain.Product) *CatalogUseCase {
	return NewCatalogUC(&fakeProductRepo{products: products}, nil, nil, nopLogger{})
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Smartphone X1", Price: 699.99},
		{ID: 2, Name: "Wireless Earbuds Pro", Price: 149.99},
		{ID: 3, Name: "Leather Laptop Bag", Price: 89.99},
		{ID: 4, Name: "Smartwatch Series 5", Price: 299.99},
	}
}

func TestListProducts_Pagination(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	page, err := uc.ListProducts(context.Background(), NewListProductsReq(2, 1))
	require.NoError(t, err)

	require.Len(t, page, 2)
	assert.Equal(t, int64(2), page[0].ID)
	assert.Equal(t, int64(3), page[1].ID)
}

func TestListProducts_OutOfRangeSkip(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	page, err := uc.ListProducts(context.Background(), NewListProductsReq(10, 100))
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestListProducts_ClampsInvalidParams(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	page, err := uc.ListProducts(context.Background(), NewListProductsReq(-5, -10))
	require.NoError(t, err)

	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].ID)
}

func TestGetProductByID(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	product, err := uc.GetProductByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Leather Laptop Bag", product.Name)

	_, err = uc.GetProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestResolveProducts_PerUnitInInputOrder(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	res, err := uc.ResolveProducts(context.Background(), NewResolveProductsReq([]int64{2, 1, 2}))
	require.NoError(t, err)

	require.Len(t, res.Products, 3)
	assert.Equal(t, int64(2), res.Products[0].ID)
	assert.Equal(t, int64(1), res.Products[1].ID)
	assert.Equal(t, int64(2), res.Products[2].ID)
	assert.Empty(t, res.NotFoundIDs)
}

func TestResolveProducts_CollectsNotFound(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	res, err := uc.ResolveProducts(context.Background(), NewResolveProductsReq([]int64{1, 999, 999, 500}))
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, []int64{999, 500}, res.NotFoundIDs)
}

func TestResolveProducts_EmptyInput(t *testing.T) {
	uc := newTestCatalogUC(catalogFixture())

	_, err := uc.ResolveProducts(context.Background(), NewResolveProductsReq(nil))
	assert.ErrorIs(t, err, e.ErrProductIDsRequired)
}
