package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/logger"
	"sports-health-centers-api/internal/models"
	"sports-health-centers-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"*"}}}
	return SetupRouter(testutil.Store(t), cfg, logger.New(io.Discard, "error", "text"))
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "https://agent.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	w := get(t, newRouter(t), "/")
	require.Equal(t, http.StatusOK, w.Code)

	info := decode[models.ServiceInfo](t, w)
	assert.Equal(t, "Sports Health Centers API", info.Message)
	assert.Equal(t, 6, info.TotalCenters)
	assert.Equal(t, "/nearby?lat=47.0&lng=2.0&radius_km=50", info.Endpoints["nearby"])
	assert.Equal(t, "/centers/{id}", info.Endpoints["center_by_id"])
}

func TestListCenters(t *testing.T) {
	r := newRouter(t)

	page := decode[models.CenterPage](t, get(t, r, "/centers"))
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 100, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Len(t, page.Data, 6)

	page = decode[models.CenterPage](t, get(t, r, "/centers?limit=2&offset=3"))
	assert.Equal(t, 6, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, testutil.IDBasketBourges, page.Data[0].ID)
	assert.Equal(t, testutil.IDYogaChartres, page.Data[1].ID)

	w := get(t, r, "/centers?offset=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":6,"limit":100,"offset":10,"data":[]}`, w.Body.String())
}

func TestListCentersValidation(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		query string
		msg   string
	}{
		{"limit=0", "limit must be greater than or equal to 1"},
		{"limit=501", "limit must be less than or equal to 500"},
		{"offset=-1", "offset must be greater than or equal to 0"},
		{"limit=abc", `invalid number "abc"`},
		{"limit=", "limit must be an integer"},
		{"offset=", "offset must be an integer"},
		{"limit=&offset=", "limit must be an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := get(t, r, "/centers?"+tt.query)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, decode[models.ErrorResponse](t, w).Error)
		})
	}

	assert.Equal(t, http.StatusOK, get(t, r, "/centers?limit=500").Code)
	assert.Equal(t, http.StatusOK, get(t, r, "/centers?limit=1").Code)
}

func TestGetCenterByID(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/centers/"+testutil.IDPiscine)
	require.Equal(t, http.StatusOK, w.Code)
	c := decode[models.Center](t, w)
	assert.Equal(t, testutil.IDPiscine, c.ID)
	assert.Equal(t, "Piscine d'Orléans", c.Name)

	w = get(t, r, "/centers/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Center with id nope not found", decode[models.ErrorResponse](t, w).Error)
}

func TestSearch(t *testing.T) {
	r := newRouter(t)

	res := decode[models.SearchResult](t, get(t, r, "/search?q=tennis"))
	assert.Equal(t, "tennis", res.Query)
	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Data, 3)

	for _, target := range []string{"/search", "/search?q=", "/search?q=t"} {
		w := get(t, r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
	assert.Equal(t, "q must be at least 2 characters", decode[models.ErrorResponse](t, get(t, r, "/search?q=t")).Error)
	assert.Equal(t, "q is required", decode[models.ErrorResponse](t, get(t, r, "/search")).Error)
}

func TestByDisciplineAndPathology(t *testing.T) {
	r := newRouter(t)

	d := decode[models.DisciplineResult](t, get(t, r, "/discipline?name=tennis"))
	assert.Equal(t, "tennis", d.Discipline)
	assert.Equal(t, 3, d.Count)

	p := decode[models.PathologyResult](t, get(t, r, "/pathology?name=cancer"))
	assert.Equal(t, "cancer", p.Pathology)
	assert.Equal(t, 2, p.Count)

	empty := get(t, r, "/pathology?name=goutte")
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `{"pathology":"goutte","count":0,"data":[]}`, empty.Body.String())

	assert.Equal(t, http.StatusBadRequest, get(t, r, "/discipline").Code)
	w := get(t, r, "/pathology?name=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name is required", decode[models.ErrorResponse](t, w).Error)
}

func TestListEndpoints(t *testing.T) {
	r := newRouter(t)

	d := decode[models.DisciplineList](t, get(t, r, "/disciplines"))
	assert.Equal(t, 8, d.Count)
	assert.Equal(t, "Aquagym", d.Disciplines[0])

	p := decode[models.PathologyList](t, get(t, r, "/pathologies"))
	assert.Equal(t, 5, p.Count)
	assert.Equal(t, []string{"Cancer", "Diabète", "Maladies cardiovasculaires", "Maladies respiratoires", "Obésité"}, p.Pathologies)
}

func TestNearby(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/nearby?lat=47.39&lng=0.69&radius_km=50")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.NearbyResult](t, w)
	assert.Equal(t, models.Location{Lat: 47.39, Lng: 0.69}, res.Location)
	assert.Equal(t, 50.0, res.RadiusKm)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Data, 2)
	assert.Equal(t, testutil.IDTennisTours, res.Data[0].ID)
	assert.Equal(t, 0.0, res.Data[0].DistanceKm)

	// Default radius is 50 km.
	res = decode[models.NearbyResult](t, get(t, r, "/nearby?lat=47.39&lng=0.69"))
	assert.Equal(t, 50.0, res.RadiusKm)
	assert.Equal(t, 2, res.Count)

	// lat=0 is a valid coordinate.
	assert.Equal(t, http.StatusOK, get(t, r, "/nearby?lat=0&lng=0").Code)
	// Out-of-range coordinates are accepted and simply yield nothing nearby.
	assert.Equal(t, http.StatusOK, get(t, r, "/nearby?lat=95&lng=-200").Code)
}

func TestNearbyValidation(t *testing.T) {
	r := newRouter(t)

	for _, target := range []string{
		"/nearby",
		"/nearby?lat=47",
		"/nearby?lng=1",
		"/nearby?lat=47&lng=1&radius_km=0.5",
		"/nearby?lat=47&lng=1&radius_km=501",
		"/nearby?lat=47&lng=x",
		"/nearby?lat=NaN&lng=1",
		"/nearby?lat=47&lng=Inf",
	} {
		w := get(t, r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.NotEmpty(t, decode[models.ErrorResponse](t, w).Error, target)
	}

	w := get(t, r, "/nearby?lat=47")
	assert.Equal(t, "lng is required", decode[models.ErrorResponse](t, w).Error)
}

func TestNearbyRejectsBlankValues(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		query string
		msg   string
	}{
		{"lat=&lng=1", "lat is required"},
		{"lat=47&lng=", "lng is required"},
		{"lat=&lng=", "lat is required"},
		{"lat=%20&lng=1", "lat is required"},
		{"lat=47&lng=1&radius_km=", "radius_km must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := get(t, r, "/nearby?"+tt.query)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, decode[models.ErrorResponse](t, w).Error)
		})
	}
}

func TestResponsesKeepNonASCIILiteral(t *testing.T) {
	w := get(t, newRouter(t), "/centers/"+testutil.IDYogaChartres)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Cathédrale")
	assert.Contains(t, body, "<détente>")
	assert.Contains(t, body, `"Pathologies / Prévention":"Maladies respiratoires\r\n"`)
	assert.Contains(t, body, `"lat":"48.45"`)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/disciplines")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/nearby", nil)
	req.Header.Set("Origin", "https://agent.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	pre := httptest.NewRecorder()
	r.ServeHTTP(pre, req)
	assert.Equal(t, http.StatusNoContent, pre.Code)
	assert.Equal(t, "*", pre.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	r := newRouter(t)

	w := get(t, r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok","centers":6}`, w.Body.String())
}

func TestReadEndpointsAreIdempotent(t *testing.T) {
	r := newRouter(t)
	for _, target := range []string{"/centers?limit=3&offset=1", "/search?q=tours", "/nearby?lat=47.6&lng=1.4&radius_km=120", "/pathologies"} {
		first := get(t, r, target).Body.String()
		assert.Equal(t, first, get(t, r, target).Body.String(), target)
	}
}

func TestUnknownRoute(t *testing.T) {
	w := get(t, newRouter(t), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t)
	get(t, r, "/disciplines")

	w := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "centers_api_requests_total")
}
