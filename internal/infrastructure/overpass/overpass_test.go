package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/meditrack-app/go-backend/internal/cfg"
	"github.com/meditrack-app/go-backend/pkg/e"
	"github.com/meditrack-app/go-backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

func testClient(endpoint string, timeout time.Duration) *Client {
	return NewClient(&cfg.OverpassCfg{Endpoint: endpoint, Timeout: timeout}, logger.NewSlogLogger())
}

func TestFindPharmacies_BuildsRadiusQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("data")
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, time.Second).FindPharmacies(context.Background(), "10.72", "122.56")
	require.NoError(t, err)

	require.Contains(t, gotQuery, `node["amenity"="pharmacy"]`)
	require.Contains(t, gotQuery, "around:5000,10.72,122.56")
	require.Contains(t, gotQuery, "[out:json]")
}

func TestFindPharmacies_MapsElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements":[
			{"lat":10.721,"lon":122.561,"tags":{"name":"Test Pharmacy"}},
			{"tags":{}},
			{"lat":10.7,"lon":122.5}
		]}`))
	}))
	defer srv.Close()

	elements, err := testClient(srv.URL, time.Second).FindPharmacies(context.Background(), "10.72", "122.56")
	require.NoError(t, err)
	require.Len(t, elements, 3)

	require.Equal(t, "Test Pharmacy", elements[0].Name)
	require.NotNil(t, elements[0].Lat)
	require.Equal(t, 10.721, *elements[0].Lat)
	require.NotNil(t, elements[0].Lon)
	require.Equal(t, 122.561, *elements[0].Lon)

	// Узел без координат и имени проходит как есть
	require.Equal(t, "", elements[1].Name)
	require.Nil(t, elements[1].Lat)
	require.Nil(t, elements[1].Lon)

	// Узел без tags
	require.Equal(t, "", elements[2].Name)
	require.NotNil(t, elements[2].Lat)
}

func TestFindPharmacies_UpstreamErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := testClient(srv.URL, time.Second).FindPharmacies(context.Background(), "1", "2")
		require.ErrorIs(t, err, e.ErrUpstreamUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL, time.Second).FindPharmacies(context.Background(), "1", "2")
		require.ErrorIs(t, err, e.ErrUpstreamUnavailable)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := testClient("http://127.0.0.1:1", time.Second).FindPharmacies(context.Background(), "1", "2")
		require.ErrorIs(t, err, e.ErrUpstreamUnavailable)
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"elements":[]}`))
		}))
		defer srv.Close()

		_, err := testClient(srv.URL, 20*time.Millisecond).FindPharmacies(context.Background(), "1", "2")
		require.ErrorIs(t, err, e.ErrUpstreamUnavailable)
	})
}
