package storefront

import (
	"math/rand"
	"time"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/internal/repository/memory"
	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/e"
)

// Мок-каталог совпадает с демо-каталогом бэкенда: при недоступности
// сервера витрина остаётся наполненной теми же товарами.

func mockProductPage(limit, skip int64) []domain.Product {
	if limit < 1 {
		limit = 1
	}
	if skip < 0 {
		skip = 0
	}

	products := memory.SeedProducts()
	total := int64(len(products))
	if skip >= total {
		return []domain.Product{}
	}

	// limit сравнивается с остатком, а не складывается со skip:
	// сумма может переполнить int64
	end := total
	if limit < total-skip {
		end = skip + limit
	}

	return products[skip:end]
}

func findMockProduct(id int64) (*domain.Product, error) {
	for _, product := range memory.SeedProducts() {
		if product.ID == id {
			return &product, nil
		}
	}

	return nil, e.ErrProductNotFound
}

// buildMockOrder синтезирует заказ локально по той же схеме агрегации,
// что и бэкенд: повторы сворачиваются в позиции, неизвестные ID отбрасываются.
func buildMockOrder(productIDs []int64) (*OrderResult, error) {
	index := make(map[int64]int)
	items := make([]OrderLineItem, 0, len(productIDs))
	unitIDs := make([]int64, 0, len(productIDs))

	for _, id := range productIDs {
		product, err := findMockProduct(id)
		if err != nil {
			continue // неизвестный товар молча отбрасывается
		}

		unitIDs = append(unitIDs, id)
		if i, ok := index[id]; ok {
			items[i].Quantity++
			continue
		}

		index[id] = len(items)
		items = append(items, OrderLineItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: 1,
		})
	}

	if len(items) == 0 {
		return nil, e.ErrNoValidProducts
	}

	domainItems := make([]domain.LineItem, 0, len(items))
	for _, item := range items {
		domainItems = append(domainItems, domain.LineItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	now := time.Now().UTC()

	return &OrderResult{
		ID:          rand.Int63n(100_000),
		UserID:      1,
		ProductIDs:  unitIDs,
		Products:    items,
		TotalAmount: usecase.OrderTotal(domainItems),
		Status:      string(domain.OrderStatusPending),
		CreatedAt:   now,
		UpdatedAt:   now,
		Mock:        true,
	}, nil
}
