package usecase

import "context"

// OrderEventProducer публикует события размещения заказа.
type OrderEventProducer interface {
	PublishOrderPlaced(ctx context.Context, msg *OrderPlacedMsg) error
}

// OrderIDGenerator — стратегия генерации идентификаторов заказов.
// Подменяется в тестах на детерминированную последовательность.
type OrderIDGenerator interface {
	NextOrderID() int64
}
