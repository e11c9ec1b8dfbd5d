package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/api/routes"
	"sports-health-centers-api/internal/client"
	"sports-health-centers-api/internal/logger"
	"sports-health-centers-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := routes.SetupRouter(testutil.Store(t), config.Config{}, logger.New(io.Discard, "error", "text"))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", 5*time.Second)
}

func TestClientEndpoints(t *testing.T) {
	api := newClient(t)
	ctx := context.Background()

	info, err := api.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, info.TotalCenters)

	page, err := api.Centers(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, testutil.IDPiscine, page.Data[0].ID)

	center, err := api.Center(ctx, testutil.IDPingBlois)
	require.NoError(t, err)
	assert.Equal(t, "Ping Blois", center.Name)
	lat, err := center.Lat.Float()
	require.NoError(t, err)
	assert.Equal(t, 47.59, lat)

	search, err := api.Search(ctx, "piscine d'orléans")
	require.NoError(t, err)
	assert.Equal(t, 1, search.Count)

	disc, err := api.ByDiscipline(ctx, "natation")
	require.NoError(t, err)
	assert.Equal(t, 1, disc.Count)

	patho, err := api.ByPathology(ctx, "obésité")
	require.NoError(t, err)
	assert.Equal(t, 2, patho.Count)

	disciplines, err := api.Disciplines(ctx)
	require.NoError(t, err)
	assert.Contains(t, disciplines.Disciplines, "Tennis de table")

	pathologies, err := api.Pathologies(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, pathologies.Count)

	nearby, err := api.Nearby(ctx, 47.39, 0.69, 110)
	require.NoError(t, err)
	require.Equal(t, 4, nearby.Count)
	assert.Equal(t, 107.56, nearby.Data[3].DistanceKm)
}

func TestClientAPIError(t *testing.T) {
	api := newClient(t)
	ctx := context.Background()

	_, err := api.Center(ctx, "missing id")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Center with id missing id not found", apiErr.Message)

	_, err = api.Search(ctx, "x")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "q must be at least 2 characters", apiErr.Message)
}

func TestClientNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL, time.Second).Disciplines(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url, time.Second).Info(context.Background())
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
