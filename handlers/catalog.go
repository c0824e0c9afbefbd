package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelease/services/pricing"
	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the flight, hotel and cab search endpoints.
type CatalogHandler struct {
	// Now lets tests pin the clock for the cab night surcharge.
	Now func() time.Time
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{Now: time.Now}
}

// GetFlights lists priced flight options for a route.
func (h *CatalogHandler) GetFlights(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	class := c.Query("class")
	date := c.Query("date")

	flights := pricing.SearchFlights(source, destination, class)
	if date != "" {
		filtered := flights[:0]
		for _, f := range flights {
			if strings.HasPrefix(f.DepartureTime, date) {
				filtered = append(filtered, f)
			}
		}
		flights = filtered
	}

	c.JSON(http.StatusOK, flights)
}

// BookFlight is the thin mock confirmation kept from the legacy API;
// real bookings go through POST /api/bookings.
func (h *CatalogHandler) BookFlight(c *gin.Context) {
	var input struct {
		FlightID   string `json:"flightId"`
		UserID     string `json:"userId"`
		Passengers int    `json:"passengers"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Flight booked successfully",
		"bookingId": fmt.Sprintf("B%d", h.Now().UnixMilli()),
		"status":    "Confirmed",
	})
}

// GetHotels lists the hotel catalog for a city.
func (h *CatalogHandler) GetHotels(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "City required", "pass ?city=")
		return
	}
	c.JSON(http.StatusOK, pricing.SearchHotels(city))
}

// GetCabs returns fare estimates per vehicle type for a distance.
func (h *CatalogHandler) GetCabs(c *gin.Context) {
	distance, _ := strconv.ParseFloat(c.Query("distance"), 64)
	isNight := pricing.IsNightHour(h.Now().Hour())
	c.JSON(http.StatusOK, pricing.SearchCabs(distance, isNight))
}
