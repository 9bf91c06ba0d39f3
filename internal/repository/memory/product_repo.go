package memory

import (
	"context"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
)

// ProductRepo реализует read-only репозиторий каталога поверх
// статического списка в памяти. Каталог не мутируется после создания.
type ProductRepo struct {
	products []domain.Product
	byID     map[int64]int
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	byID := make(map[int64]int, len(products))
	for i, product := range products {
		byID[product.ID] = i
	}

	return &ProductRepo{
		products: products,
		byID:     byID,
	}
}

// NewSeededProductRepo возвращает репозиторий поверх встроенного демо-каталога.
func NewSeededProductRepo() *ProductRepo {
	return NewProductRepo(SeedProducts())
}

// List возвращает срез каталога [skip, skip+limit).
func (p *ProductRepo) List(_ context.Context, limit, skip int64) ([]domain.Product, error) {
	total := int64(len(p.products))
	if skip >= total {
		return []domain.Product{}, nil
	}

	// limit сравнивается с остатком, а не складывается со skip:
	// сумма может переполнить int64
	end := total
	if limit < total-skip {
		end = skip + limit
	}

	// Копия, чтобы вызывающий не мог изменить каталог
	page := make([]domain.Product, end-skip)
	copy(page, p.products[skip:end])

	return page, nil
}

// GetByID возвращает продукт или ErrProductNotFound.
func (p *ProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	i, ok := p.byID[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	product := p.products[i]

	return &product, nil
}

// GetByIDs возвращает найденные продукты; отсутствующие идентификаторы
// просто не попадают в результат.
func (p *ProductRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if i, ok := p.byID[id]; ok {
			result = append(result, p.products[i])
		}
	}

	return result, nil
}
