package usecase

import (
	"context"

	"github.com/meditrack-app/go-backend/internal/domain"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

// assortmentSize — размер случайной подборки товаров на одну аптеку.
// Системная константа, клиентом не настраивается.
const assortmentSize = 20

// PharmacyUseCase реализует агрегацию ближайших аптек: внешний POI-поиск
// плюс случайная подборка товаров каталога для каждой найденной точки.
type PharmacyUseCase struct {
	catalog CatalogRepository
	poi     PoiInfra
	logger  logger.Logger
}

func NewPharmacyUC(
	catalog CatalogRepository,
	poi PoiInfra,
	logger logger.Logger,
) *PharmacyUseCase {
	return &PharmacyUseCase{
		catalog: catalog,
		poi:     poi,
		logger:  logger,
	}
}

// FindNearby возвращает аптеки в радиусе поиска вокруг переданных координат,
// в том порядке, в котором их вернул POI-сервис. Пустой каталог — не ошибка:
// аптеки возвращаются с пустыми подборками.
func (u *PharmacyUseCase) FindNearby(ctx context.Context, req *FindNearbyReq) ([]domain.PharmacyLocation, error) {
	const op = "PharmacyUseCase.FindNearby"

	if req.Lat == "" || req.Lng == "" {
		return nil, e.Wrap(op, e.ErrMissingCoordinates)
	}

	elements, err := u.poi.FindPharmacies(ctx, req.Lat, req.Lng)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	locations := make([]domain.PharmacyLocation, 0, len(elements))
	for _, el := range elements {
		locations = append(locations, u.buildLocation(el))
	}

	u.logger.Debugf("found %d pharmacies near (%s, %s)", len(locations), req.Lat, req.Lng)

	return locations, nil
}

// buildLocation собирает одну аптеку из узла карты: имя с фолбэком,
// координаты как есть и независимая случайная подборка товаров.
func (u *PharmacyUseCase) buildLocation(el PoiElement) domain.PharmacyLocation {
	name := el.Name
	if name == "" {
		name = domain.UnnamedPharmacy
	}

	sampled := u.catalog.SampleWithoutReplacement(assortmentSize)
	products := make([]domain.AssortmentItem, 0, len(sampled))
	for _, p := range sampled {
		products = append(products, p.Assortment())
	}

	return domain.PharmacyLocation{
		Name:     name,
		Lat:      el.Lat,
		Lng:      el.Lon,
		Products: products,
	}
}
