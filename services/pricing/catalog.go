package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"travelease/models"
)

// The catalog generators below replace the legacy mock-data endpoints:
// deterministic search results priced through the estimator, so every
// surface quotes from the same formulas.

var airlines = []string{"IndiGo", "Air India", "Vistara", "Akasa Air", "SpiceJet"}

type hotelTemplate struct {
	name   string
	rating int
	mult   float64
}

var hotelTemplates = []hotelTemplate{
	{name: "Heritage Grand", rating: 5, mult: 2.8},
	{name: "City Central", rating: 4, mult: 1.5},
	{name: "Residency Inn", rating: 3, mult: 0.9},
	{name: "Luxury Palace", rating: 5, mult: 4.2},
}

const hotelBaseRate = 3000

type cabConfig struct {
	vehicle string
	model   string
	base    float64
	perKm   float64
}

var cabConfigs = []cabConfig{
	{vehicle: "Bike", model: "Hero Splendor", base: 40, perKm: 12},
	{vehicle: "Auto", model: "Bajaj RE", base: 60, perKm: 18},
	{vehicle: "Sedan", model: "Swift Dzire", base: 120, perKm: 25},
	{vehicle: "SUV", model: "Innova Crysta", base: 250, perKm: 45},
}

// SearchFlights returns one priced option per airline for the route.
func SearchFlights(source, destination, flightClass string) []models.Flight {
	if source == "" {
		source = "Delhi"
	}
	if destination == "" {
		destination = "Mumbai"
	}
	if flightClass == "" {
		flightClass = models.ClassEconomy
	}

	dist := EstimateDistance(source, destination)
	mult := ClassMultiplier(flightClass)

	flights := make([]models.Flight, 0, len(airlines))
	for i, airline := range airlines {
		price := int64(math.Round((float64(dist)*4.5 + 1500) * mult))
		code := airline[:2]
		flights = append(flights, models.Flight{
			ID:             fmt.Sprintf("F-%s-%d", code, i),
			Airline:        airline,
			FlightNumber:   fmt.Sprintf("%s-%d", code, 100+i),
			Source:         source,
			Destination:    destination,
			DepartureTime:  "2023-11-25T10:00:00",
			ArrivalTime:    "2023-11-25T12:15:00",
			BasePrice:      price,
			DynamicPrice:   price,
			FormattedPrice: FormatINR(price),
			Class:          flightClass,
			GateNumber:     fmt.Sprintf("%dA", 10+i),
			GateStatus:     "same",
		})
	}
	return flights
}

// SearchHotels returns the four template hotels for a city. An empty
// city yields no results.
func SearchHotels(city string) []models.Hotel {
	if city == "" {
		return nil
	}

	hotels := make([]models.Hotel, 0, len(hotelTemplates))
	for i, t := range hotelTemplates {
		base := float64(hotelBaseRate) * t.mult
		roomTypes := make([]models.RoomType, 0, 3)
		for _, rt := range []string{"Standard", "Deluxe", "Suite"} {
			m := RoomTypeMultiplier(rt)
			roomTypes = append(roomTypes, models.RoomType{
				Type:       rt,
				Multiplier: m,
				Price:      int64(math.Round(base * m)),
			})
		}
		prefix := city
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		hotels = append(hotels, models.Hotel{
			ID:        fmt.Sprintf("H-%s-%d", prefix, i),
			Name:      fmt.Sprintf("%s %s", city, t.name),
			City:      city,
			Rating:    t.rating,
			Price:     int64(math.Round(base)),
			Amenities: []string{"WiFi", "AC", "Breakfast"},
			RoomTypes: roomTypes,
		})
	}
	return hotels
}

// SearchCabs returns a fare estimate per vehicle type for the distance.
func SearchCabs(distanceKm float64, isNight bool) []models.CabOption {
	if distanceKm <= 0 {
		distanceKm = 15
	}

	cabs := make([]models.CabOption, 0, len(cabConfigs))
	for i, cab := range cabConfigs {
		cabs = append(cabs, models.CabOption{
			ID:             fmt.Sprintf("C%d", i),
			Type:           cab.vehicle,
			Model:          cab.model,
			EstimatedPrice: EstimateCabPrice(cab.base, cab.perKm, distanceKm, isNight),
			IsNightCharge:  isNight,
		})
	}
	return cabs
}

// CabRates returns the base fare and per-km rate for a vehicle type,
// falling back to the Sedan rates for unknown types.
func CabRates(vehicleType string) (baseFare, perKm float64) {
	for _, cab := range cabConfigs {
		if cab.vehicle == vehicleType {
			return cab.base, cab.perKm
		}
	}
	return 120, 25
}

// SuggestTrip applies the budget classification rules and returns the
// recommendation plus the estimated spend (90% of budget).
func SuggestTrip(budget float64) (models.TripSuggestion, int64) {
	s := models.TripSuggestion{
		Classification: "Economy",
		FlightClass:    models.ClassEconomy,
		HotelType:      "Standard",
		CabType:        "Auto/Bus",
		Destination:    "Goa",
	}

	switch {
	case budget < 5000:
		s.Classification = "Budget"
		s.HotelType = "Standard"
		s.CabType = "Auto"
		s.Destination = "Jaipur"
	case budget <= 20000:
		s.Classification = "Premium"
		s.FlightClass = models.ClassPremiumEconomy
		s.HotelType = "Deluxe"
		s.CabType = "Sedan"
		s.Destination = "Kerala"
	default:
		s.Classification = "Luxury"
		s.FlightClass = models.ClassBusiness
		s.HotelType = "Presidential"
		s.CabType = "SUV"
		s.Destination = "Udaipur"
	}

	return s, int64(math.Round(budget * 0.9))
}

// BlendEstimate is the planner's quick quote: a tier-weighted lump sum
// split across flight (40%), hotel (45%) and cab (remainder, so the
// components always sum to the blended total).
func BlendEstimate(source, destination, optimization string) models.PriceBreakdown {
	avgTier := (LookupCity(source).Tier + LookupCity(destination).Tier) / 2

	costFactor := 0.8
	switch optimization {
	case models.OptimizeLuxury:
		costFactor = 2.5
	case models.OptimizeComfort:
		costFactor = 1.5
	}

	grandTotal := int64(math.Round(8000 * avgTier * costFactor))
	flight := int64(math.Round(float64(grandTotal) * 0.4))
	hotel := int64(math.Round(float64(grandTotal) * 0.45))
	cab := grandTotal - flight - hotel

	return Aggregate(flight, hotel, cab)
}

// FormatINR renders an amount with Indian digit grouping, e.g.
// ₹12,34,567.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	var grouped string
	if len(s) <= 3 {
		grouped = s
	} else {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}
