// internal/api/routes/routes.go
package routes

import (
	"log/slog"
	"net/http"
	"time"

	"sports-health-centers-api/config"
	"sports-health-centers-api/internal/api/handlers"
	"sports-health-centers-api/internal/api/middleware"
	"sports-health-centers-api/internal/dataset"
	"sports-health-centers-api/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every read-only endpoint over the frozen store.
func SetupRouter(store *dataset.Store, cfg config.Config, log *slog.Logger) *gin.Engine {
	handlers.RegisterValidation()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Metrics())
	router.Use(corsMiddleware(cfg.CORS))

	infoHandler := &handlers.InfoHandler{Store: store}
	centerHandler := &handlers.CenterHandler{Store: store}
	nearbyHandler := &handlers.NearbyHandler{Store: store}

	router.GET("/", infoHandler.Root)
	router.GET("/health", infoHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	centers := router.Group("/centers")
	{
		centers.GET("", centerHandler.ListCenters)
		centers.GET("/:id", centerHandler.GetCenterByID)
	}

	router.GET("/search", centerHandler.Search)
	router.GET("/discipline", centerHandler.ByDiscipline)
	router.GET("/disciplines", centerHandler.ListDisciplines)
	router.GET("/pathology", centerHandler.ByPathology)
	router.GET("/pathologies", centerHandler.ListPathologies)
	router.GET("/nearby", nearbyHandler.Nearby)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	return router
}

// corsMiddleware allows any origin by default. Credentials are only
// allowed with an explicit origin list, as browsers refuse them with "*".
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := cfg.AllowOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}

	return cors.New(c)
}
