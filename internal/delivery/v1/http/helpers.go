package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meditrack-app/go-backend/pkg/e"
)

// ErrorResponse — тело ошибки для клиента. Ключ сообщения зависит от типа:
// клиентские и upstream-ошибки отдаются как {"error": ...}, недоступность
// данных каталога — как {"message": ...}.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrMissingCoordinates):
		return http.StatusBadRequest, "Missing coordinates"
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, "Invalid max_price"
	case errors.Is(err, e.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "Pharmacy locations are temporarily unavailable"
	case errors.Is(err, e.ErrDataUnavailable):
		return http.StatusInternalServerError, "Data is unavailable"
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if errors.Is(err, e.ErrDataUnavailable) {
		json.NewEncoder(w).Encode(MessageResponse{Message: msg})
		return
	}

	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// WriteNotFound отдает 404 с сообщением, включающим запрошенный идентификатор.
func WriteNotFound(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
