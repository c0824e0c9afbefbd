package pricing

import (
	"math"
	"sort"

	"travelease/models"
)

// SameCityDistanceKm is returned when origin and destination match or
// either side is missing.
const SameCityDistanceKm = 100

// classMultipliers scales the flight base fare per cabin class. Unknown
// classes fall back to 1.0 rather than failing.
var classMultipliers = map[string]float64{
	models.ClassEconomy:        1,
	models.ClassPremiumEconomy: 1.6,
	models.ClassBusiness:       3,
	models.ClassFirst:          5,
}

// roomTypeMultipliers scales the hotel base rate per room category.
var roomTypeMultipliers = map[string]float64{
	"Standard":     1,
	"Deluxe":       1.5,
	"Suite":        2.5,
	"Presidential": 3,
}

// EstimateDistance derives a deterministic pseudo-distance in km from a
// city pair. The pair is sorted so the result is symmetric, then hashed
// with 31x string hashing. The hash deliberately runs in int32 so that
// overflow wraps to 32-bit signed semantics; this pins the output to
// the values the legacy pricing produced and must not be widened.
func EstimateDistance(cityA, cityB string) int {
	if cityA == "" || cityB == "" || cityA == cityB {
		return SameCityDistanceKm
	}
	pair := []string{cityA, cityB}
	sort.Strings(pair)
	s := pair[0] + "-" + pair[1]

	var h int32
	for _, r := range s {
		h = int32(r) + (h<<5 - h)
	}
	d := int(h) % 1500
	if d < 0 {
		d = -d
	}
	return d + 200
}

// FlightAddOns are the optional fare extras.
type FlightAddOns struct {
	Refundable bool
	Meal       string // surcharge applies unless empty or "No Preference"
	Baggage    string // "5kg", "15kg" (default) or "25kg"
}

// ClassMultiplier returns the fare multiplier for a cabin class,
// defaulting to 1.0 for unknown values.
func ClassMultiplier(flightClass string) float64 {
	if m, ok := classMultipliers[flightClass]; ok {
		return m
	}
	return 1.0
}

// RoomTypeMultiplier returns the rate multiplier for a room category,
// defaulting to 1.0 for unknown values.
func RoomTypeMultiplier(roomType string) float64 {
	if m, ok := roomTypeMultipliers[roomType]; ok {
		return m
	}
	return 1.0
}

// EstimateFlightPrice computes the full flight fare for a party.
// base = (km * 4.5 + 1500) * classMultiplier, doubled-ish (x1.8) for a
// round trip, plus flat add-on surcharges, times the traveler count.
func EstimateFlightPrice(distanceKm int, flightClass, tripType string, travelers int, addOns FlightAddOns) int64 {
	if travelers < 1 {
		travelers = 1
	}

	base := (float64(distanceKm)*4.5 + 1500) * ClassMultiplier(flightClass)
	if tripType == models.TripRoundTrip {
		base *= 1.8
	}

	if addOns.Refundable {
		base += 1500
	}
	if addOns.Meal != "" && addOns.Meal != "No Preference" {
		base += 500
	}
	switch addOns.Baggage {
	case "25kg":
		base += 1500
	case "5kg":
		base -= 500
	}

	return int64(math.Round(base * float64(travelers)))
}

// HotelScaling selects which party dimension multiplies the room rate.
// The two legacy call sites disagreed (per-traveler in the manual flow,
// per-night everywhere else), so the choice stays with the caller.
type HotelScaling int

const (
	ScaleByTravelers HotelScaling = iota
	ScaleByNights
)

// EstimateHotelPrice computes the hotel component of a trip.
func EstimateHotelPrice(basePrice float64, roomMultiplier float64, nights, travelers int, scaling HotelScaling) int64 {
	price := basePrice * roomMultiplier

	switch scaling {
	case ScaleByNights:
		if nights < 1 {
			nights = 1
		}
		price *= float64(nights)
	default:
		if travelers < 1 {
			travelers = 1
		}
		price *= float64(travelers)
	}

	return int64(math.Round(price))
}

// NightSurcharge is the cab fare multiplier between 22:00 and 06:00.
const NightSurcharge = 1.25

// IsNightHour reports whether the local hour falls in the surcharge
// window (hour >= 22 or hour < 6).
func IsNightHour(hour int) bool {
	return hour >= 22 || hour < 6
}

// EstimateCabPrice computes a cab fare from base fare, per-km rate and
// distance, applying the night surcharge when asked.
func EstimateCabPrice(baseFare, perKmRate float64, distanceKm float64, isNightHour bool) int64 {
	fare := baseFare + perKmRate*distanceKm
	if isNightHour {
		fare *= NightSurcharge
	}
	return int64(math.Round(fare))
}

// Aggregate sums the three components into a breakdown. Inputs are
// never mutated; Total is always the exact sum.
func Aggregate(flight, hotel, cab int64) models.PriceBreakdown {
	return models.PriceBreakdown{
		Flight: flight,
		Hotel:  hotel,
		Cab:    cab,
		Total:  flight + hotel + cab,
	}
}
