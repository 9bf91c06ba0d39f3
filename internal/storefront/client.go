// Package storefront реализует клиент витрины: чтение каталога,
// локальную корзину и оформление заказа через REST API бэкенда.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/logger"
)

// apiEnvelope — конверт успешного ответа API.
type apiEnvelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Success bool   `json:"success"`
}

type productDTO struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	ImageURL           string    `json:"imageUrl"`
	Category           string    `json:"category"`
	Stock              int64     `json:"stock"`
	Description        string    `json:"description"`
	Brand              string    `json:"brand"`
	Rating             float64   `json:"rating"`
	DiscountPercentage *float64  `json:"discountPercentage"`
	CreatedAt          time.Time `json:"createdAt"`
}

// OrderLineItem — агрегированная позиция в ответе заказа.
type OrderLineItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// OrderResult — заказ, возвращённый бэкендом (или синтезированный локально).
type OrderResult struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	ProductIDs  []int64         `json:"productIds"`
	Products    []OrderLineItem `json:"products"`
	TotalAmount float64         `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Mock        bool            `json:"-"` // заказ синтезирован локально из-за недоступности бэкенда
}

// Client — HTTP-клиент API витрины. Сбои чтения каталога маскируются
// встроенными мок-данными, недоступность бэкенда при оформлении заказа —
// локально синтезированным заказом.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetPaginatedProducts возвращает страницу каталога.
// При сбое сети или не-2xx ответе возвращается срез мок-каталога.
func (c *Client) GetPaginatedProducts(ctx context.Context, limit, skip int64) ([]domain.Product, error) {
	url := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)

	var envelope apiEnvelope[[]productDTO]
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		c.logger.Warnf("Catalog fetch failed, using mock data: %v", err)
		return mockProductPage(limit, skip), nil
	}

	products := make([]domain.Product, 0, len(envelope.Data))
	for i := range envelope.Data {
		products = append(products, toDomainProduct(&envelope.Data[i]))
	}

	return products, nil
}

// GetProductByID возвращает продукт по идентификатору с мок-фолбэком.
func (c *Client) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	var envelope apiEnvelope[productDTO]
	if err := c.getJSON(ctx, url, &envelope); err != nil {
		c.logger.Warnf("Product fetch failed, using mock data: %v", err)
		return findMockProduct(id)
	}

	product := toDomainProduct(&envelope.Data)

	return &product, nil
}

// CreateOrder отправляет заказ на бэкенд. Ошибка валидации (4xx) возвращается
// вызывающему; недоступность бэкенда маскируется локальным мок-заказом.
func (c *Client) CreateOrder(ctx context.Context, productIDs []int64) (*OrderResult, error) {
	body, err := json.Marshal(map[string][]int64{"productIds": productIDs})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Order submit failed, synthesizing mock order: %v", err)
		return buildMockOrder(productIDs)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return nil, fmt.Errorf("order rejected: status %d", resp.StatusCode)
		}

		return nil, fmt.Errorf("order rejected: %s (%s)", apiErr.Message, apiErr.Error)
	}

	var envelope apiEnvelope[OrderResult]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func toDomainProduct(dto *productDTO) domain.Product {
	return domain.Product{
		ID:                 dto.ID,
		Name:               dto.Name,
		Price:              dto.Price,
		ImageURL:           dto.ImageURL,
		Category:           dto.Category,
		Stock:              dto.Stock,
		Description:        dto.Description,
		Brand:              dto.Brand,
		Rating:             dto.Rating,
		DiscountPercentage: dto.DiscountPercentage,
		CreatedAt:          dto.CreatedAt,
	}
}
