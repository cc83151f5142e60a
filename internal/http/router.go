// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skytaxi/internal/config"
	"skytaxi/internal/http/handlers"
	"skytaxi/internal/http/middleware"
	"skytaxi/internal/modules/booking"
	"skytaxi/internal/modules/pricing"
)

type RouterDeps struct {
	Booking *booking.Service
	Pricing *pricing.Service
	Map     config.MapConfig
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	catalogHandler := handlers.NewCatalogHandler(deps.Pricing, deps.Map)
	api.GET("/tiers", catalogHandler.Tiers)
	api.GET("/quotes", catalogHandler.Quotes)
	api.GET("/map", catalogHandler.Map)

	bookingHandler := handlers.NewBookingHandler(deps.Booking, deps.Pricing)
	api.POST("/bookings", bookingHandler.Start)
	api.GET("/bookings/:id", bookingHandler.Get)
	api.DELETE("/bookings/:id", bookingHandler.End)
	api.POST("/bookings/:id/pickup", bookingHandler.Pickup)
	api.POST("/bookings/:id/destination", bookingHandler.Destination)
	api.GET("/bookings/:id/quotes", bookingHandler.Quotes)
	api.POST("/bookings/:id/tier", bookingHandler.Tier)
	api.POST("/bookings/:id/confirm", bookingHandler.Confirm)
	api.POST("/bookings/:id/reset", bookingHandler.Reset)

	return r
}
