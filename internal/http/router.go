package api

import (
	"log"
	stdhttp "net/http"

	intconfig "airbooking/internal/config"
	h "airbooking/internal/http/handlers"
	"airbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	h.SetJWTSecret([]byte(env.JWTSecret))
	requireAuth := middleware.RequireAuth([]byte(env.JWTSecret))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Booking construction (stateless engine calls)
		bookings := api.Group("/bookings")
		bookings.POST("/validate-passengers", h.ValidatePassengers)
		bookings.POST("/quote", h.PriceQuote)

		// Stored bookings
		bookings.GET("/lookup", h.LookupBooking)
		bookings.GET("/:reference", requireAuth, h.GetBooking)
		bookings.GET("/:reference/cancellation-quote", requireAuth, h.CancellationQuote)
		bookings.POST("/:reference/cancel", requireAuth, h.CancelBooking)
		bookings.GET("/:reference/e-ticket", requireAuth, h.GetETicketPDF)
		bookings.GET("/:reference/cancellation-notice", requireAuth, h.GetCancellationNoticePDF)
	}

	h.SetRouter(r)
	return r
}
