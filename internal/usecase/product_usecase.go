package usecase

import (
	"context"

	"github.com/meditrack-app/go-backend/internal/domain"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

// ProductUseCase реализует простые выборки по каталогу товаров.
type ProductUseCase struct {
	catalog CatalogRepository
	logger  logger.Logger
}

func NewProductUC(catalog CatalogRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// GetAll возвращает весь каталог. Пустой каталог для этого метода — ошибка:
// данные недоступны.
func (u *ProductUseCase) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.GetAll"

	all := u.catalog.All()
	if len(all) == 0 {
		return nil, e.Wrap(op, e.ErrDataUnavailable)
	}

	return all, nil
}

// GetByID возвращает товар по идентификатору.
func (u *ProductUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	product, ok := u.catalog.GetByID(id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	return product, nil
}

// SearchByName возвращает товары с подстрокой запроса в названии, без
// ранжирования. При заданном пороге цены отбрасываются товары дороже
// порога и товары с нераспознанной ценой.
func (u *ProductUseCase) SearchByName(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error) {
	results := u.catalog.SearchByName(req.Name)
	if req.MaxPriceCents == nil {
		return results, nil
	}

	filtered := make([]domain.Product, 0, len(results))
	for _, p := range results {
		if p.PriceCents != nil && *p.PriceCents <= *req.MaxPriceCents {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}
