package usecase

import (
	"context"

	"github.com/cartcraft/backend/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ResolveProducts(ctx context.Context, req *ResolveProductsReq) (*ResolveProductsRes, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
}
