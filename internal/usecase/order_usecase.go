package usecase

import (
	"context"
	"time"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/jitter"
	"github.com/cartcraft/backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase реализует размещение заказа: разрешение идентификаторов
// через каталог, агрегацию повторов в позиции и подсчёт суммы.
type OrderUseCase struct {
	catalog    CatalogUC
	idGen      OrderIDGenerator
	producer   OrderEventProducer
	demoUserID int64
	logger     logger.Logger
}

func NewOrderUC(
	catalog CatalogUC,
	idGen OrderIDGenerator,
	producer OrderEventProducer,
	demoUserID int64,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		catalog:    catalog,
		idGen:      idGen,
		producer:   producer,
		demoUserID: demoUserID,
		logger:     logger,
	}
}

// PlaceOrder синтезирует заказ по списку идентификаторов товаров.
// Неизвестные идентификаторы отбрасываются (с логированием); если не
// разрешился ни один — ErrNoValidProducts.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	if len(req.ProductIDs) == 0 {
		return nil, e.Wrap(op, e.ErrProductIDsRequired)
	}

	resolved, err := o.catalog.ResolveProducts(ctx, NewResolveProductsReq(req.ProductIDs))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(resolved.NotFoundIDs) > 0 {
		o.logger.Warnf("Dropped unknown product ids from order: %v", resolved.NotFoundIDs)
	}

	if len(resolved.Products) == 0 {
		return nil, e.Wrap(op, e.ErrNoValidProducts)
	}

	items := aggregateLineItems(resolved.Products)
	total := OrderTotal(items)

	unitIDs := make([]int64, 0, len(resolved.Products))
	for _, product := range resolved.Products {
		unitIDs = append(unitIDs, product.ID)
	}

	now := time.Now().UTC()
	order := domain.NewOrder(o.idGen.NextOrderID(), o.demoUserID, unitIDs, items, total, now)

	o.logOrderDetails(order)
	o.publishInBackground(order)

	return order, nil
}

// aggregateLineItems сворачивает повторы товаров в позиции с количеством.
// Порядок позиций — порядок первого вхождения товара во входном списке.
func aggregateLineItems(products []domain.Product) []domain.LineItem {
	index := make(map[int64]int, len(products))
	items := make([]domain.LineItem, 0, len(products))

	for _, product := range products {
		if i, ok := index[product.ID]; ok {
			items[i].Quantity++
			continue
		}

		index[product.ID] = len(items)
		items = append(items, domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  1,
		})
	}

	return items
}

// publishInBackground отправляет событие order.placed, не блокируя запрос.
// Неудача публикации не влияет на результат размещения заказа.
func (o *OrderUseCase) publishInBackground(order *domain.Order) {
	if o.producer == nil {
		return
	}

	const (
		maxAttempts  = 3
		baseBackoff  = 200 * time.Millisecond
		maxBackoff   = 2 * time.Second
		totalTimeout = 10 * time.Second
	)

	msg := NewOrderPlacedMsg(uuid.NewString(), order)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), totalTimeout)
		defer cancel()

		var err error
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err = o.producer.PublishOrderPlaced(bgCtx, msg); err == nil {
				return
			}

			// После последней попытки не ждём, сразу фиксируем неудачу
			if attempt == maxAttempts-1 {
				break
			}

			select {
			case <-bgCtx.Done():
				o.logger.Warnf("Order event publish cancelled: order_id: %d: %v", order.ID, bgCtx.Err())
				return
			case <-time.After(jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)):
			}
		}

		o.logger.Warnf("Failed to publish order event: order_id: %d: %v", order.ID, err)
	}()
}

// logOrderDetails печатает сводку заказа в лог.
func (o *OrderUseCase) logOrderDetails(order *domain.Order) {
	for _, item := range order.Items {
		o.logger.Infof("Order %d: %s (x%d) - %.2f",
			order.ID, item.Name, item.Quantity, LineTotal(item.Price, item.Quantity).InexactFloat64())
	}

	o.logger.Infof("Order %d placed: user_id: %d, items: %d, total: %.2f, status: %s",
		order.ID, order.UserID, len(order.Items), order.TotalAmount, order.Status)
}
