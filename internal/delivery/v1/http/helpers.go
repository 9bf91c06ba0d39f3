package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
)

// SuccessResponse — конверт успешного ответа API.
type SuccessResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

// ErrorResponse — конверт ошибки API.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ProductResponse — JSON-представление продукта.
type ProductResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	ImageURL           string    `json:"imageUrl"`
	Category           string    `json:"category"`
	Stock              int64     `json:"stock"`
	Description        string    `json:"description"`
	Brand              string    `json:"brand"`
	Rating             float64   `json:"rating"`
	DiscountPercentage *float64  `json:"discountPercentage,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// LineItemResponse — агрегированная позиция заказа.
type LineItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// OrderResponse — JSON-представление заказа.
type OrderResponse struct {
	ID          int64              `json:"id"`
	UserID      int64              `json:"userId"`
	ProductIDs  []int64            `json:"productIds"`
	Products    []LineItemResponse `json:"products"`
	TotalAmount float64            `json:"totalAmount"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func NewErrorResponse(status int, errLabel, message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  status,
		Success: false,
		Error:   errLabel,
		Message: message,
	}
}

// ToHTTPResponse отображает ошибку usecase в статус, метку и сообщение.
func ToHTTPResponse(err error) (int, string, string) {
	switch {
	case errors.Is(err, e.ErrInvalidRequestBody):
		return http.StatusBadRequest, "Bad Request", e.ErrInvalidRequestBody.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, "Bad Request", e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrProductIDsRequired):
		return http.StatusBadRequest, "Bad Request", e.ErrProductIDsRequired.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, "Not Found", e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrNoValidProducts):
		return http.StatusNotFound, "Not Found", e.ErrNoValidProducts.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error", e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status, label, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewErrorResponse(status, label, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&SuccessResponse{
		Status:  status,
		Message: message,
		Data:    data,
		Success: true,
	})
}

func toProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:                 product.ID,
		Name:               product.Name,
		Price:              product.Price,
		ImageURL:           product.ImageURL,
		Category:           product.Category,
		Stock:              product.Stock,
		Description:        product.Description,
		Brand:              product.Brand,
		Rating:             product.Rating,
		DiscountPercentage: product.DiscountPercentage,
		CreatedAt:          product.CreatedAt,
	}
}

func toProductListResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	return result
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItemResponse{
			ID:       item.ProductID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		ProductIDs:  order.ProductIDs,
		Products:    items,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
