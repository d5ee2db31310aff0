package domain

import (
	"strings"

	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// ParsePriceCents переводит строку цены каталога ("₱480.00", "600") в
// сентаво. Возвращает ошибку, если:
// - формат некорректен
// - больше двух знаков после запятой
// - значение отрицательное
func ParsePriceCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₱")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrInvalidPrice
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
