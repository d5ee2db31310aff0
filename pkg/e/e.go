package e

import "fmt"

var (
	// 400 Bad Request
	ErrMissingCoordinates = fmt.Errorf("missing coordinates")
	ErrInvalidPrice       = fmt.Errorf("invalid price")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 5xx
	ErrDataUnavailable     = fmt.Errorf("data is unavailable")
	ErrUpstreamUnavailable = fmt.Errorf("upstream service unavailable")
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
