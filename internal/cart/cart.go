// Package cart реализует клиентскую корзину: чистые функции над набором
// позиций (товар, количество) и персистентное хранилище-аналог localStorage.
package cart

import "github.com/cartcraft/backend/internal/domain"

// Item — позиция корзины. Инвариант: Quantity ≥ 1;
// позиции с нулевым количеством удаляются, а не хранятся.
type Item struct {
	Product  domain.Product `json:"product"`
	Quantity int64          `json:"quantity"`
}

// Add возвращает новую корзину: количество существующего товара
// увеличивается на 1, новый товар добавляется с количеством 1.
func Add(items []Item, product domain.Product) []Item {
	for i, item := range items {
		if item.Product.ID == product.ID {
			updated := make([]Item, len(items))
			copy(updated, items)
			updated[i].Quantity++

			return updated
		}
	}

	updated := make([]Item, 0, len(items)+1)
	updated = append(updated, items...)
	updated = append(updated, Item{Product: product, Quantity: 1})

	return updated
}

// SetQuantity возвращает новую корзину с заменённым количеством товара.
// Количество ≤ 0 удаляет позицию; отсутствующий товар — no-op.
func SetQuantity(items []Item, productID int64, quantity int64) []Item {
	if quantity <= 0 {
		return Remove(items, productID)
	}

	updated := make([]Item, len(items))
	copy(updated, items)
	for i := range updated {
		if updated[i].Product.ID == productID {
			updated[i].Quantity = quantity
		}
	}

	return updated
}

// Remove возвращает новую корзину без указанного товара.
func Remove(items []Item, productID int64) []Item {
	updated := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			updated = append(updated, item)
		}
	}

	return updated
}

// ExpandToUnitList разворачивает корзину в плоский список идентификаторов:
// по одному на каждую единицу товара. В таком виде корзина уходит в заказ.
func ExpandToUnitList(items []Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		for i := int64(0); i < item.Quantity; i++ {
			ids = append(ids, item.Product.ID)
		}
	}

	return ids
}

// TotalUnits возвращает суммарное количество единиц товара в корзине.
func TotalUnits(items []Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}

	return total
}
