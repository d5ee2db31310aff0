package usecase

// PHARMACY USECASE

// FindNearbyReq — запрос на поиск ближайших аптек. Координаты приходят из
// query-параметров как есть; проверяется только их наличие.
type FindNearbyReq struct {
	Lat string
	Lng string
}

// PoiElement — точка карты, возвращенная POI-сервисом.
// Координаты могут отсутствовать у исходного узла, значения не корректируются.
type PoiElement struct {
	Lat  *float64
	Lon  *float64
	Name string // тег name узла; пустая строка, если тега нет
}

// PRODUCT USECASE

// SearchProductsReq — запрос поиска товаров по подстроке названия.
// MaxPriceCents — необязательный верхний порог цены.
type SearchProductsReq struct {
	Name          string
	MaxPriceCents *int64
}

// MAPPERS

func NewFindNearbyReq(lat, lng string) *FindNearbyReq {
	return &FindNearbyReq{
		Lat: lat,
		Lng: lng,
	}
}

func NewPoiElement(lat, lon *float64, name string) PoiElement {
	return PoiElement{
		Lat:  lat,
		Lon:  lon,
		Name: name,
	}
}

func NewSearchProductsReq(name string, maxPriceCents *int64) *SearchProductsReq {
	return &SearchProductsReq{
		Name:          name,
		MaxPriceCents: maxPriceCents,
	}
}
