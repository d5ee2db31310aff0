package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/meditrack-app/go-backend/internal/cfg"
	"github.com/meditrack-app/go-backend/internal/usecase"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
)

// searchRadiusMeters — фиксированный радиус поиска аптек вокруг точки.
const searchRadiusMeters = 5000

// Client — клиент для взаимодействия с внешним Overpass-интерпретатором.
// Любой сбой вызова (сеть, таймаут, не-2xx, некорректный JSON) схлопывается
// в e.ErrUpstreamUnavailable; ретраев нет.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logger.Logger
}

func NewClient(cfg *cfg.OverpassCfg, logger logger.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

// FindPharmacies запрашивает узлы amenity=pharmacy в радиусе поиска вокруг
// координат. Координаты подставляются в запрос как есть. Элементы ответа
// возвращаются в порядке, выданном сервисом, без дедупликации.
func (c *Client) FindPharmacies(ctx context.Context, lat, lng string) ([]usecase.PoiElement, error) {
	const op = "overpass.Client.FindPharmacies"

	query := fmt.Sprintf(
		`[out:json];node["amenity"="pharmacy"](around:%d,%s,%s);out;`,
		searchRadiusMeters, lat, lng,
	)

	reqURL := c.endpoint + "?data=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Errorf(err, "overpass request build failed")
		return nil, e.Wrap(op, e.ErrUpstreamUnavailable)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Errorf(err, "overpass call failed")
		return nil, e.Wrap(op, e.ErrUpstreamUnavailable)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.logger.Warnf("overpass returned status %d", res.StatusCode)
		return nil, e.Wrap(op, e.ErrUpstreamUnavailable)
	}

	var body overpassResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		c.logger.Errorf(err, "overpass response decode failed")
		return nil, e.Wrap(op, e.ErrUpstreamUnavailable)
	}

	elements := make([]usecase.PoiElement, 0, len(body.Elements))
	for _, el := range body.Elements {
		elements = append(elements, usecase.NewPoiElement(el.Lat, el.Lon, el.Tags["name"]))
	}

	return elements, nil
}

// overpassResponse — формат ответа интерпретатора.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Lat  *float64          `json:"lat"`
	Lon  *float64          `json:"lon"`
	Tags map[string]string `json:"tags"`
}
