package domain

import (
	"testing"

	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int64
		valid bool
	}{
		{name: "peso formatted", in: "₱480.00", want: 48000, valid: true},
		{name: "bare integer", in: "600", want: 60000, valid: true},
		{name: "thousands separator", in: "₱1,250.00", want: 125000, valid: true},
		{name: "whitespace", in: "  ₱45.00 ", want: 4500, valid: true},
		{name: "zero", in: "0", want: 0, valid: true},
		{name: "empty", in: "", valid: false},
		{name: "currency only", in: "₱", valid: false},
		{name: "garbage", in: "abc", valid: false},
		{name: "negative", in: "-5", valid: false},
		{name: "too precise", in: "1.999", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriceCents(tt.in)
			if !tt.valid {
				require.ErrorIs(t, err, e.ErrInvalidPrice)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAssortment_ProjectsProductFields(t *testing.T) {
	p := Product{
		ID:           7,
		ProductName:  "Losartan 100mg",
		Price:        "₱540.00",
		PharmacyName: "Generika Drugstore",
		Availability: AvailabilityInStock,
		Category:     "Heart & Blood",
		ProductImage: "https://via.placeholder.com/150?text=Losartan+100mg",
		Overview:     "Losartan 100mg is used for heart & blood.",
	}

	item := p.Assortment()

	require.Equal(t, int64(7), item.ID)
	require.Equal(t, "Losartan 100mg", item.ProductName)
	require.Equal(t, "₱540.00", item.Price)
	require.Equal(t, "Heart & Blood", item.Category)
	require.Equal(t, "https://via.placeholder.com/150?text=Losartan+100mg", item.ProductImage)
	require.Equal(t, AvailabilityInStock, item.Availability)
}
