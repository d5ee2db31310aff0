package domain

// UnnamedPharmacy — имя по умолчанию для точек без тега name.
const UnnamedPharmacy = "Unnamed Pharmacy"

// PharmacyLocation — найденная рядом аптека с подборкой товаров.
// Живет только в рамках одного ответа, нигде не сохраняется.
// Координаты могут отсутствовать у исходной точки, поэтому указатели.
type PharmacyLocation struct {
	Name     string           `json:"name"`
	Lat      *float64         `json:"lat"`
	Lng      *float64         `json:"lng"`
	Products []AssortmentItem `json:"products"`
}
