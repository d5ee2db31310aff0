package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/meditrack-app/go-backend/internal/domain"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/sample"
)

// Store — неизменяемый после создания каталог товаров в памяти.
// Безопасен для любого числа параллельных читателей.
type Store struct {
	products []domain.Product
	byID     map[int64]int // индекс в products по id товара
	src      *sample.Source
}

// NewStore создает каталог из загруженных товаров. Цены нормализуются в
// сентаво один раз здесь; нераспарсившиеся строки цены не считаются ошибкой.
func NewStore(products []domain.Product, src *sample.Source) *Store {
	byID := make(map[int64]int, len(products))
	for i := range products {
		if cents, err := domain.ParsePriceCents(products[i].Price); err == nil {
			products[i].PriceCents = &cents
		}
		byID[products[i].ID] = i
	}

	return &Store{
		products: products,
		byID:     byID,
		src:      src,
	}
}

// LoadSeed читает seed-файл каталога. Отсутствие или нечитаемость файла —
// ошибка для вызывающего, но не для процесса: приложение стартует с пустым
// каталогом.
func LoadSeed(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

// All возвращает весь каталог в порядке загрузки.
func (s *Store) All() []domain.Product {
	return s.products
}

// Size возвращает число товаров в каталоге.
func (s *Store) Size() int {
	return len(s.products)
}

// GetByID возвращает товар по идентификатору.
func (s *Store) GetByID(id int64) (*domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.products[i], true
}

// SearchByName возвращает товары, название которых содержит подстроку
// запроса без учета регистра. Порядок — порядок каталога, без ранжирования.
func (s *Store) SearchByName(query string) []domain.Product {
	q := strings.ToLower(query)

	results := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.ProductName), q) {
			results = append(results, p)
		}
	}

	return results
}

// SampleWithoutReplacement возвращает min(n, size) различных товаров,
// выбранных равновероятно. Порядок результата — порядок выборки.
func (s *Store) SampleWithoutReplacement(n int) []domain.Product {
	idx := s.src.Indices(len(s.products), n)

	picked := make([]domain.Product, 0, len(idx))
	for _, i := range idx {
		picked = append(picked, s.products[i])
	}

	return picked
}
