package catalog

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/meditrack-app/go-backend/internal/domain"
	"github.com/meditrack-app/go-backend/pkg/sample"
	"github.com/stretchr/testify/require"
)

func testProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, domain.Product{
			ID:           int64(i),
			ProductName:  fmt.Sprintf("Product %d", i),
			Price:        fmt.Sprintf("₱%d.00", i*10),
			Availability: domain.AvailabilityInStock,
			Category:     "Pain Relief",
		})
	}
	return products
}

func testStore(n int) *Store {
	return NewStore(testProducts(n), sample.NewSource(rand.New(rand.NewSource(1))))
}

func TestLoadSeed(t *testing.T) {
	t.Run("valid seed file", func(t *testing.T) {
		products, err := LoadSeed(filepath.Join("testdata", "products.json"))
		require.NoError(t, err)
		require.Len(t, products, 3)
		require.Equal(t, "Biogesic 500mg", products[0].ProductName)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join("testdata", "no_such_file.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join("testdata", "broken.json"))
		require.Error(t, err)
	})
}

func TestNewStore_NormalizesPrices(t *testing.T) {
	products, err := LoadSeed(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)

	store := NewStore(products, sample.NewDefaultSource())

	all := store.All()
	require.NotNil(t, all[0].PriceCents)
	require.Equal(t, int64(4500), *all[0].PriceCents)

	// Нераспарсившаяся цена не ломает загрузку
	require.Nil(t, all[2].PriceCents)
}

func TestGetByID(t *testing.T) {
	store := testStore(5)

	p, ok := store.GetByID(3)
	require.True(t, ok)
	require.Equal(t, "Product 3", p.ProductName)

	_, ok = store.GetByID(99)
	require.False(t, ok)
}

func TestSearchByName(t *testing.T) {
	store := NewStore([]domain.Product{
		{ID: 1, ProductName: "Biogesic 500mg"},
		{ID: 2, ProductName: "Neozep 250mg"},
		{ID: 3, ProductName: "Bioflu 100mg"},
	}, sample.NewDefaultSource())

	t.Run("case insensitive substring", func(t *testing.T) {
		results := store.SearchByName("BIO")
		require.Len(t, results, 2)
		// Порядок каталога сохраняется
		require.Equal(t, int64(1), results[0].ID)
		require.Equal(t, int64(3), results[1].ID)
	})

	t.Run("no match", func(t *testing.T) {
		results := store.SearchByName("paracetamol")
		require.NotNil(t, results)
		require.Empty(t, results)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		require.Len(t, store.SearchByName(""), 3)
	})
}

func TestSampleWithoutReplacement(t *testing.T) {
	t.Run("n smaller than catalog", func(t *testing.T) {
		store := testStore(50)

		picked := store.SampleWithoutReplacement(20)
		require.Len(t, picked, 20)
		requireDistinctIDs(t, picked)
	})

	t.Run("n larger than catalog", func(t *testing.T) {
		store := testStore(5)

		picked := store.SampleWithoutReplacement(20)
		require.Len(t, picked, 5)
		requireDistinctIDs(t, picked)
	})

	t.Run("empty catalog degrades to empty sample", func(t *testing.T) {
		store := NewStore(nil, sample.NewDefaultSource())

		picked := store.SampleWithoutReplacement(20)
		require.NotNil(t, picked)
		require.Empty(t, picked)
	})
}

func requireDistinctIDs(t *testing.T, products []domain.Product) {
	t.Helper()

	seen := make(map[int64]bool, len(products))
	for _, p := range products {
		require.False(t, seen[p.ID], "product %d sampled twice", p.ID)
		seen[p.ID] = true
	}
}
