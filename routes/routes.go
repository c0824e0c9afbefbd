package routes

import (
	"net/http"
	"time"

	"travelease/handlers"
	"travelease/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the flight, hotel and cab search
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/flights", hb.GetFlightsHandler)
		api.POST("/flights/book", hb.BookFlightHandler)
		api.GET("/hotels", hb.GetHotelsHandler)
		api.GET("/cabs", hb.GetCabsHandler)
	}
}

// RegisterTravelInfoRoutes registers the weather and gate endpoints.
func RegisterTravelInfoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/weather", hb.GetWeatherHandler)
		api.GET("/gate", hb.GetGateHandler)
	}
}

// RegisterAIRoutes registers the suggester, planner and chat endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.FirebaseAuth())
	{
		api.POST("/ai/suggest", hb.AISuggestHandler)
		api.POST("/planner/session", hb.PlannerStartHandler)
		api.POST("/planner/session/:id/answer", hb.PlannerAnswerHandler)
		api.POST("/chat", hb.ChatHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle and checkout
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.FirebaseAuth())
	{
		api.POST("/bookings", hb.CreateBookingHandler)
		api.GET("/bookings/:id", hb.GetBookingHandler)
		api.GET("/bookings/user/:userId", hb.ListBookingsHandler)
		api.PUT("/bookings/:id/cancel", hb.CancelBookingHandler)
		api.PUT("/bookings/:id", hb.RebookBookingHandler)
		api.POST("/payments", hb.PaymentHandler)
	}
}

// RegisterRoutes sets up CORS and registers all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterTravelInfoRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterBookingRoutes(r, hb)

	r.GET("/health", hb.HealthHandler)
}
