package usecase

import (
	"context"

	"github.com/meditrack-app/go-backend/internal/domain"
)

type ProductUC interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	SearchByName(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error)
}

type PharmacyUC interface {
	FindNearby(ctx context.Context, req *FindNearbyReq) ([]domain.PharmacyLocation, error)
}
