package handlers

import (
	"net/http"
	"time"

	"travelease/services/gate"
	"travelease/services/weather"
	"travelease/utils"

	"github.com/gin-gonic/gin"
)

// TravelInfoHandler serves the mock weather and gate endpoints.
type TravelInfoHandler struct {
	Weather *weather.Generator
	Gates   *gate.Predictor
}

func NewTravelInfoHandler(w *weather.Generator, g *gate.Predictor) *TravelInfoHandler {
	return &TravelInfoHandler{Weather: w, Gates: g}
}

// GetWeather returns a 5-day forecast starting at the departure date.
func (h *TravelInfoHandler) GetWeather(c *gin.Context) {
	city := c.Query("city")
	departureDate := c.Query("departureDate")
	if departureDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Departure date required", "pass ?departureDate=YYYY-MM-DD")
		return
	}

	departure, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid departure date", err.Error())
		return
	}

	c.JSON(http.StatusOK, h.Weather.Forecast(city, departure, 5))
}

// GetGate returns the simulated gate prediction for a flight.
func (h *TravelInfoHandler) GetGate(c *gin.Context) {
	c.JSON(http.StatusOK, h.Gates.Status(c.Query("flightId")))
}
