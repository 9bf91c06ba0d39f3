package domain

import "time"

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// LineItem — агрегированная позиция заказа: один элемент на уникальный товар.
type LineItem struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int64
}

// Order — заказ, синтезируемый в рамках одного запроса.
// Заказы никуда не сохраняются, жизненный цикл — создать и вернуть.
type Order struct {
	ID          int64
	UserID      int64
	ProductIDs  []int64 // по одному ID на каждую единицу товара
	Items       []LineItem
	TotalAmount float64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewOrder(id, userID int64, productIDs []int64, items []LineItem, total float64, now time.Time) *Order {
	return &Order{
		ID:          id,
		UserID:      userID,
		ProductIDs:  productIDs,
		Items:       items,
		TotalAmount: total,
		Status:      OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
