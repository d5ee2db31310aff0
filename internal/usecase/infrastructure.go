package usecase

import "context"

type PoiInfra interface {
	FindPharmacies(ctx context.Context, lat, lng string) ([]PoiElement, error)
}
