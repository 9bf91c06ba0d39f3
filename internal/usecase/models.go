package usecase

import (
	"time"

	"github.com/cartcraft/backend/internal/domain"
)

// CATALOG USECASE

// ListProductsReq — запрос страницы каталога.
type ListProductsReq struct {
	Limit int64
	Skip  int64
}

// ResolveProductsReq — запрос продуктов по списку идентификаторов (с повторами).
type ResolveProductsReq struct {
	IDs []int64
}

// ResolveProductsRes — результат разрешения идентификаторов.
// Products следует порядку входных ID, по одному элементу на единицу товара;
// неизвестные идентификаторы попадают в NotFoundIDs (без повторов).
type ResolveProductsRes struct {
	Products    []domain.Product
	NotFoundIDs []int64
}

// ORDER USECASE

// PlaceOrderReq — запрос на размещение заказа.
type PlaceOrderReq struct {
	ProductIDs []int64
}

// INFRASTRUCTURE

// OrderPlacedMsg — событие размещения заказа для Kafka.
type OrderPlacedMsg struct {
	EventID     string
	OrderID     int64
	UserID      int64
	Items       []domain.LineItem
	TotalAmount float64
	CreatedAt   time.Time
}

// MAPPERS

func NewListProductsReq(limit, skip int64) *ListProductsReq {
	return &ListProductsReq{
		Limit: limit,
		Skip:  skip,
	}
}

func NewResolveProductsReq(ids []int64) *ResolveProductsReq {
	return &ResolveProductsReq{ids}
}

func NewResolveProductsRes(products []domain.Product, notFoundIDs []int64) *ResolveProductsRes {
	return &ResolveProductsRes{
		Products:    products,
		NotFoundIDs: notFoundIDs,
	}
}

func NewPlaceOrderReq(productIDs []int64) *PlaceOrderReq {
	return &PlaceOrderReq{productIDs}
}

func NewOrderPlacedMsg(eventID string, order *domain.Order) *OrderPlacedMsg {
	return &OrderPlacedMsg{
		EventID:     eventID,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}
}
