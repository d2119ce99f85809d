package location

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	NewHandler().Register(r)
	return r
}

func TestPresetsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body PresetsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Regions, 5)
	assert.Equal(t, Landmarks, body.Landmarks)
	assert.Equal(t, DefaultCenter, body.DefaultCenter)
}

func TestGeocodeHandler(t *testing.T) {
	t.Run("resolves the district", func(t *testing.T) {
		rec := httptest.NewRecorder()
		target := "/locations/geocode?address=" + url.QueryEscape("대전 서구 둔산동")
		newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body GeocodeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, Geocode("서구"), body.Coordinate)
	})

	t.Run("requires an address", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/geocode?address=+", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
