package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/meditrack-app/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/meditrack-app/go-backend/internal/usecase"
	"github.com/meditrack-app/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, phUC usecase.PharmacyUC) {
	r.router.Use(RequestID)
	r.router.Use(RequestLogger(r.logger))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	// Пути /api/... зафиксированы контрактом фронтенда, без версии
	r.router.Route("/api", func(api chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger)
		registerProductRoutes(api, prHandler)

		phHandler := NewPharmacyHandler(phUC, r.logger)
		registerPharmacyRoutes(api, phHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})
}

func registerPharmacyRoutes(router chi.Router, phHandler *PharmacyHandler) {
	router.Get("/nearby-pharmacies", phHandler.nearbyPharmacies)
}
