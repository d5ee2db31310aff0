package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meditrack-app/go-backend/internal/domain"
	"github.com/meditrack-app/go-backend/internal/usecase"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Полный каталог товаров
//	@Description	Возвращает весь загруженный каталог
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}		domain.Product
//	@Failure		500	{object}	MessageResponse	"Каталог не загружен"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetAll(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	domain.Product
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")

	// Нечисловой идентификатор эквивалентен отсутствующему товару
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		WriteNotFound(w, fmt.Sprintf("Product with ID %s not found", rawID))
		return
	}

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			WriteNotFound(w, fmt.Sprintf("Product with ID %s not found", rawID))
			return
		}

		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// searchProducts
//
//	@Summary		Поиск товаров по названию
//	@Description	Регистронезависимый поиск подстроки в названии, без ранжирования
//	@Tags			products
//	@Produce		json
//	@Param			name		query		string	false	"Подстрока названия"
//	@Param			max_price	query		string	false	"Верхний порог цены, например 150 или ₱150.00"
//	@Success		200			{array}		domain.Product
//	@Failure		400			{object}	ErrorResponse	"Некорректный порог цены"
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	var maxPriceCents *int64
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		cents, err := domain.ParsePriceCents(raw)
		if err != nil {
			p.logger.Warnf("%d bad max_price: %s", http.StatusBadRequest, raw)
			WriteError(w, err)
			return
		}
		maxPriceCents = &cents
	}

	products, err := p.productUsecase.SearchByName(r.Context(), usecase.NewSearchProductsReq(name, maxPriceCents))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}
