package http

import (
	_ "github.com/cartcraft/backend/docs" // Импорт сгенерированных файлов
	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, orderUC usecase.OrderUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8000/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(catalogUC, r.logger)
		orHandler := NewOrderHandler(orderUC, r.logger)
		registerProductRoutes(v1, prHandler)
		registerOrderRoutes(v1, orHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProductByID)
	})
}

func registerOrderRoutes(router chi.Router, orHandler *OrderHandler) {
	router.Route("/order", func(or chi.Router) {
		or.Post("/", orHandler.placeOrder)
	})
}
