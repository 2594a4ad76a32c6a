package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	h "github.com/bekeleandu024-ui/fleet-costing-web/internal/http/handlers"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     env.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"ok":    false,
			"error": "route not found",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/dashboard", h.GetDashboard)
		api.GET("/stats/costing", h.GetCostingStats)

		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.PATCH("/:id", h.UpdateTrip)
		trips.PATCH("/:id/status", h.UpdateTripStatus)
		trips.GET("/:id/events", h.GetTripEvents)
		trips.POST("/:id/events", h.CreateTripEvent)
		trips.POST("/:id/recalculate-cost", h.RecalculateTripCost)
		trips.POST("/:id/complete", h.CompleteTrip)

		// legacy path kept for existing clients
		api.POST("/trip-cost", h.CreateTripCost)

		dispatch := api.Group("/dispatch")
		dispatch.POST("/assign", h.AssignTrip)
		dispatch.GET("/board", h.GetDispatchBoard)

		api.GET("/tracking/active", h.GetActiveTrips)

		orders := api.Group("/orders")
		orders.GET("", h.GetOrders)
		orders.POST("", h.CreateOrder)

		api.GET("/drivers", h.GetDrivers)
		api.GET("/units", h.GetUnits)

		reports := api.Group("/reports")
		reports.GET("/trips", h.GetTripsReport)
		reports.GET("/trips/pdf", h.GetTripsReportPDF)
	}

	return r
}
