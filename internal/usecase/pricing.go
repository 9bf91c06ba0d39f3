package usecase

import (
	"github.com/cartcraft/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Денежная арифметика идёт через decimal, float64 остаётся только
// на границе JSON.

// LineTotal возвращает стоимость позиции: price × quantity.
func LineTotal(price float64, quantity int64) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(quantity))
}

// OrderTotal возвращает сумму заказа по агрегированным позициям.
func OrderTotal(items []domain.LineItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item.Price, item.Quantity))
	}

	return total.InexactFloat64()
}

// DiscountedPrice возвращает цену с учётом процентной скидки.
// При отсутствии скидки возвращается исходная цена.
func DiscountedPrice(price float64, discountPercentage *float64) float64 {
	if discountPercentage == nil {
		return price
	}

	discount := decimal.NewFromFloat(*discountPercentage).Div(decimal.NewFromInt(100))

	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(1).Sub(discount)).
		InexactFloat64()
}
