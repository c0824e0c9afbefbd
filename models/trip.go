package models

// Trip type values.
const (
	TripOneWay    = "One-way"
	TripRoundTrip = "Round-trip"
)

// Flight class values.
const (
	ClassEconomy        = "Economy"
	ClassPremiumEconomy = "Premium Economy"
	ClassBusiness       = "Business"
	ClassFirst          = "First Class"
)

// Optimization preference values.
const (
	OptimizeLowestCost = "Lowest cost"
	OptimizeComfort    = "Comfort"
	OptimizeLuxury     = "Luxury"
)

// TripRequest carries everything needed to price a trip. Treated as
// immutable once handed to the pricing estimator.
type TripRequest struct {
	Source        string `bson:"source" json:"source"`
	Destination   string `bson:"destination" json:"destination"`
	TripType      string `bson:"trip_type" json:"tripType"`
	Travelers     int    `bson:"travelers" json:"travelers"`
	FlightClass   string `bson:"flight_class" json:"flightClass"`
	DepartureDate string `bson:"departure_date" json:"departureDate"` // "YYYY-MM-DD"
	DepartureTime string `bson:"departure_time,omitempty" json:"departureTime,omitempty"`
	ReturnDate    string `bson:"return_date,omitempty" json:"returnDate,omitempty"`
	Nights        int    `bson:"nights,omitempty" json:"nights,omitempty"`
	RoomType      string `bson:"room_type,omitempty" json:"roomType,omitempty"`
	VehicleType   string `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"`
	Meal          string `bson:"meal,omitempty" json:"meal,omitempty"`
	Baggage       string `bson:"baggage,omitempty" json:"baggage,omitempty"` // "5kg", "15kg", "25kg"
	Refundable    bool   `bson:"refundable,omitempty" json:"refundable,omitempty"`
	Optimization  string `bson:"optimization,omitempty" json:"optimization,omitempty"`
}

// City is a known metro with its IATA code and cost tier (1.0–1.5).
type City struct {
	Name     string  `json:"name"`
	IATACode string  `json:"iataCode"`
	Tier     float64 `json:"tier"`
}

// PriceBreakdown is the per-component cost of a trip in whole rupees.
// Total is always Flight + Hotel + Cab.
type PriceBreakdown struct {
	Flight int64 `bson:"flight" json:"flight"`
	Hotel  int64 `bson:"hotel" json:"hotel"`
	Cab    int64 `bson:"cab" json:"cab"`
	Total  int64 `bson:"total" json:"total"`
}
