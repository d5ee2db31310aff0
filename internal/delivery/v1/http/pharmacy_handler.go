package http

import (
	"net/http"

	"github.com/meditrack-app/go-backend/internal/usecase"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUC
	logger          logger.Logger
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUC, logger logger.Logger) *PharmacyHandler {
	return &PharmacyHandler{pharmacyUsecase: pharmacyUsecase, logger: logger}
}

// nearbyPharmacies
//
//	@Summary		Аптеки рядом с точкой
//	@Description	Ищет аптеки в радиусе 5 км и прикладывает к каждой случайную подборку товаров каталога
//	@Tags			pharmacies
//	@Produce		json
//	@Param			lat	query		number	true	"Широта"
//	@Param			lng	query		number	true	"Долгота"
//	@Success		200	{array}		domain.PharmacyLocation
//	@Failure		400	{object}	ErrorResponse	"Координаты не переданы"
//	@Failure		502	{object}	ErrorResponse	"POI-сервис недоступен"
//	@Router			/nearby-pharmacies [get]
func (p *PharmacyHandler) nearbyPharmacies(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lng := r.URL.Query().Get("lng")

	locations, err := p.pharmacyUsecase.FindNearby(r.Context(), usecase.NewFindNearbyReq(lat, lng))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, locations)
}
