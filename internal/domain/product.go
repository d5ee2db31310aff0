package domain

// Availability — допустимые статусы наличия товара в каталоге.
const (
	AvailabilityInStock    = "In Stock"
	AvailabilityLimited    = "Limited"
	AvailabilityOutOfStock = "Out of Stock"
)

// Product описывает товар каталога. Каталог неизменяем после загрузки,
// поэтому все поля только читаются. JSON-теги совпадают с форматом
// seed-файла.
type Product struct {
	ID               int64  `json:"id"`
	ProductName      string `json:"product_name"`
	Price            string `json:"price"`
	PharmacyName     string `json:"pharmacy_name"`
	PharmacyLogo     string `json:"pharmacy_logo"`
	PharmacyLocation string `json:"pharmacy_location"`
	Manufacturer     string `json:"manufacturer"`
	Availability     string `json:"availability"`
	Category         string `json:"category"`
	CategoryIcon     string `json:"category_icon"`
	ProductImage     string `json:"product_image"`
	Overview         string `json:"overview"`
	UsageAndBenefits string `json:"usage_and_benefits"`
	HowItWorks       string `json:"how_it_works"`
	SideEffects      string `json:"side_effects"`

	// Цена в сентаво, вычисляется при загрузке каталога.
	// nil, если строка цены не распарсилась.
	PriceCents *int64 `json:"-"`
}

// AssortmentItem — проекция Product для витрины аптеки.
type AssortmentItem struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"product_name"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	ProductImage string `json:"product_image"`
	Availability string `json:"availability"`
}

// Assortment возвращает проекцию товара для витрины.
func (p Product) Assortment() AssortmentItem {
	return AssortmentItem{
		ID:           p.ID,
		ProductName:  p.ProductName,
		Price:        p.Price,
		Category:     p.Category,
		ProductImage: p.ProductImage,
		Availability: p.Availability,
	}
}
