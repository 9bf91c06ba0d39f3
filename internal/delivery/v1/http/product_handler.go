package http

import (
	"net/http"
	"strconv"

	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// listProducts
//
//	@Summary		Страница каталога
//	@Description	Возвращает срез каталога [skip, skip+limit)
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Размер страницы (по умолчанию 10)"
//	@Param			skip	query		int	false	"Смещение (по умолчанию 0)"
//	@Success		200		{object}	SuccessResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	const (
		defaultLimit = 10
		defaultSkip  = 0
	)

	limit := parseQueryInt(r, "limit", defaultLimit)
	skip := parseQueryInt(r, "skip", defaultSkip)

	products, err := p.catalogUC.ListProducts(r.Context(), usecase.NewListProductsReq(limit, skip))
	if err != nil {
		p.logger.Errorf(err, "failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Products fetched successfully", toProductListResponse(products))
}

// getProductByID
//
//	@Summary		Продукт по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"ID продукта"
//	@Success		200	{object}	SuccessResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidProductID.Error(), chi.URLParam(r, "id"))
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	product, err := p.catalogUC.GetProductByID(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Product fetched successfully", toProductResponse(product))
}

// parseQueryInt возвращает числовой query-параметр или значение по умолчанию.
// Некорректное значение не ошибка: используется значение по умолчанию.
func parseQueryInt(r *http.Request, key string, defaultValue int64) int64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultValue
	}

	return parsed
}
