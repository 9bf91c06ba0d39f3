package usecase

import (
	"context"
	"time"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/logger"
)

// CatalogUseCase реализует чтение каталога: пагинация, поиск по ID,
// разрешение списка идентификаторов для заказа. Кэш и хранилище
// изображений опциональны (nil — выключено).
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imageRepo   ImageRepository
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imageRepo ImageRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

// ListProducts возвращает срез каталога [skip, skip+limit).
// Выход за пределы каталога — пустая страница, не ошибка.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	limit, skip := req.Limit, req.Skip
	if limit < 1 {
		limit = 1
	}
	if skip < 0 {
		skip = 0
	}

	products, err := c.productRepo.List(ctx, limit, skip)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.cacheInBackground(op, products)

	if err := c.resolveImageURLs(ctx, products); err != nil {
		c.logger.Warnf("Failed to resolve image urls: %v", e.Wrap(op, err))
	}

	return products, nil
}

// GetProductByID возвращает продукт по идентификатору, сначала из кэша.
func (c *CatalogUseCase) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProductByID"

	if c.cacheRepo != nil {
		cached, err := c.cacheRepo.GetProducts(ctx, []int64{id})
		if err != nil {
			c.logger.Warnf("Cache lookup failed: %v", e.Wrap(op, err))
		} else if product, ok := cached[id]; ok {
			page := []domain.Product{product}
			if err := c.resolveImageURLs(ctx, page); err != nil {
				c.logger.Warnf("Failed to resolve image url: %v", e.Wrap(op, err))
			}
			return &page[0], nil
		}
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.cacheInBackground(op, []domain.Product{*product})

	page := []domain.Product{*product}
	if err := c.resolveImageURLs(ctx, page); err != nil {
		c.logger.Warnf("Failed to resolve image url: %v", e.Wrap(op, err))
	}

	return &page[0], nil
}

// ResolveProducts разрешает список идентификаторов (с повторами) в продукты.
// Неизвестные идентификаторы не прерывают разрешение, а накапливаются в NotFoundIDs.
func (c *CatalogUseCase) ResolveProducts(ctx context.Context, req *ResolveProductsReq) (*ResolveProductsRes, error) {
	const op = "CatalogUseCase.ResolveProducts"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrProductIDsRequired)
	}

	distinct := distinctIDs(req.IDs)

	// Поиск продуктов в кэше
	var cacheProductsMap map[int64]domain.Product
	if c.cacheRepo != nil {
		var err error
		cacheProductsMap, err = c.cacheRepo.GetProducts(ctx, distinct)
		if err != nil {
			c.logger.Warnf("Cache lookup failed: %v", e.Wrap(op, err))
			cacheProductsMap = nil
		}
	}

	nonCacheable := make([]int64, 0, len(distinct))
	for _, id := range distinct {
		if _, ok := cacheProductsMap[id]; !ok {
			nonCacheable = append(nonCacheable, id)
		}
	}

	// Получение остальных продуктов из репозитория
	dbProductsMap := make(map[int64]domain.Product)
	if len(nonCacheable) > 0 {
		productsFromDB, err := c.productRepo.GetByIDs(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		for _, product := range productsFromDB {
			dbProductsMap[product.ID] = product
		}

		c.cacheInBackground(op, productsFromDB)
	}

	// Формирование результата: по одному продукту на каждую единицу во входе
	resolved := make([]domain.Product, 0, len(req.IDs))
	notFound := make([]int64, 0)
	missing := make(map[int64]bool)
	for _, id := range req.IDs {
		if product, ok := cacheProductsMap[id]; ok {
			resolved = append(resolved, product)
		} else if product, ok := dbProductsMap[id]; ok {
			resolved = append(resolved, product)
		} else if !missing[id] {
			missing[id] = true
			notFound = append(notFound, id)
		}
	}

	return NewResolveProductsRes(resolved, notFound), nil
}

// cacheInBackground фоново добавляет продукты в кэш, не блокируя запрос.
func (c *CatalogUseCase) cacheInBackground(op string, products []domain.Product) {
	if c.cacheRepo == nil || len(products) == 0 {
		return
	}

	// Снимок, чтобы фоновая запись не гонялась с resolveImageURLs
	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, snapshot); err != nil {
			c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
		}
	}()
}

// resolveImageURLs заменяет ключи объектов на presigned-ссылки,
// когда изображения хранятся в MinIO.
func (c *CatalogUseCase) resolveImageURLs(ctx context.Context, products []domain.Product) error {
	if c.imageRepo == nil {
		return nil
	}

	for i := range products {
		if products[i].ImageURL == "" {
			continue
		}

		url, err := c.imageRepo.PresignedURL(ctx, products[i].ImageURL)
		if err != nil {
			return err
		}
		products[i].ImageURL = url
	}

	return nil
}

func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}

	return result
}
