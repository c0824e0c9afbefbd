package handlers

import (
	bookingRepo "travelease/database/repository/booking"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BookingRepo bookingRepo.BookingRepository

	// Catalog endpoints
	GetFlightsHandler gin.HandlerFunc
	BookFlightHandler gin.HandlerFunc
	GetHotelsHandler  gin.HandlerFunc
	GetCabsHandler    gin.HandlerFunc

	// Travel info endpoints
	GetWeatherHandler gin.HandlerFunc
	GetGateHandler    gin.HandlerFunc

	// AI endpoints
	AISuggestHandler     gin.HandlerFunc
	PlannerStartHandler  gin.HandlerFunc
	PlannerAnswerHandler gin.HandlerFunc
	ChatHandler          gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler gin.HandlerFunc
	GetBookingHandler    gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc
	RebookBookingHandler gin.HandlerFunc
	PaymentHandler       gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}
