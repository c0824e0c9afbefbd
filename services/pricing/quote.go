package pricing

import (
	"travelease/models"
)

// QuoteTrip prices a manual-planner trip end to end: flight from the
// deterministic distance, hotel from the selected room (scaled by
// travelers, matching the manual flow), cab from the chosen vehicle at
// the stock 25 km transfer distance. hour is the local hour used for
// the cab night surcharge.
func QuoteTrip(trip models.TripRequest, hotelID string, hour int) models.PriceBreakdown {
	dist := EstimateDistance(trip.Source, trip.Destination)

	flight := EstimateFlightPrice(dist, trip.FlightClass, trip.TripType, trip.Travelers, FlightAddOns{
		Refundable: trip.Refundable,
		Meal:       trip.Meal,
		Baggage:    trip.Baggage,
	})

	var hotel int64
	if hotelID != "" {
		for _, h := range SearchHotels(trip.Destination) {
			if h.ID != hotelID {
				continue
			}
			base := float64(h.Price)
			for _, rt := range h.RoomTypes {
				if rt.Type == trip.RoomType {
					base = float64(rt.Price)
					break
				}
			}
			hotel = EstimateHotelPrice(base, 1.0, trip.Nights, trip.Travelers, ScaleByTravelers)
			break
		}
	}

	var cab int64
	if trip.VehicleType != "" {
		base, perKm := CabRates(trip.VehicleType)
		cab = EstimateCabPrice(base, perKm, transferDistanceKm, IsNightHour(hour))
	}

	return Aggregate(flight, hotel, cab)
}

// transferDistanceKm is the assumed airport-transfer distance.
const transferDistanceKm = 25
