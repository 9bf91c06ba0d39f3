package http

import (
	"encoding/json"
	"net/http"

	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/e"
	"github.com/cartcraft/backend/pkg/logger"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type placeOrderReq struct {
	ProductIDs []int64 `json:"productIds"`
}

// placeOrder
//
//	@Summary		Размещение заказа
//	@Description	Принимает список идентификаторов товаров (по одному на единицу) и синтезирует заказ
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			input	body		placeOrderReq	true	"Идентификаторы товаров"
//	@Success		201		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/order [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidRequestBody.Error(), err.Error())
		WriteError(w, e.ErrInvalidRequestBody)
		return
	}

	// Пустой или отсутствующий список отклоняется до агрегации
	if len(req.ProductIDs) == 0 {
		o.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrProductIDsRequired.Error())
		WriteError(w, e.ErrProductIDsRequired)
		return
	}

	order, err := o.orderUC.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(req.ProductIDs))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Order placed successfully", toOrderResponse(order))
}
