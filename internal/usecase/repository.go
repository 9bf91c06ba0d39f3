package usecase

import (
	"context"

	"github.com/cartcraft/backend/internal/domain"
)

// ProductRepository — read-only хранилище каталога.
// Реализации: статический in-memory список и PostgreSQL.
type ProductRepository interface {
	List(ctx context.Context, limit, skip int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

// CacheRepository — кэш продуктов поверх Redis.
// Промахи и ошибки кэша не фатальны для чтения каталога.
type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
}

// ImageRepository выдаёт ссылки на изображения товаров из объектного хранилища.
type ImageRepository interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}
