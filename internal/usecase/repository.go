package usecase

import (
	"github.com/meditrack-app/go-backend/internal/domain"
)

// CatalogRepository — доступ к каталогу товаров. Каталог загружается один
// раз при старте и дальше только читается, поэтому методы не блокируются
// и не принимают контекст.
type CatalogRepository interface {
	All() []domain.Product
	Size() int
	GetByID(id int64) (*domain.Product, bool)
	SearchByName(query string) []domain.Product
	SampleWithoutReplacement(n int) []domain.Product
}
