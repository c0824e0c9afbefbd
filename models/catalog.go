package models

// Flight is a priced flight search result.
type Flight struct {
	ID             string `json:"id"`
	Airline        string `json:"airline"`
	FlightNumber   string `json:"flightNumber"`
	Source         string `json:"source"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	BasePrice      int64  `json:"basePrice"`
	DynamicPrice   int64  `json:"dynamicPrice"`
	FormattedPrice string `json:"formattedPrice"`
	Class          string `json:"class"`
	GateNumber     string `json:"gateNumber"`
	GateStatus     string `json:"gateStatus"`
}

// RoomType is one bookable room category of a hotel.
type RoomType struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
	Price      int64   `json:"price"`
}

// Hotel is a priced hotel search result.
type Hotel struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	City      string     `json:"city"`
	Rating    int        `json:"rating"`
	Price     int64      `json:"price"`
	Amenities []string   `json:"amenities"`
	RoomTypes []RoomType `json:"roomTypes"`
}

// CabOption is a fare estimate for one vehicle type.
type CabOption struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Model          string `json:"model"`
	EstimatedPrice int64  `json:"estimatedPrice"`
	IsNightCharge  bool   `json:"isNightCharge"`
}

// TripSuggestion is the budget-rule recommendation.
type TripSuggestion struct {
	Classification string `json:"classification"`
	FlightClass    string `json:"flightClass"`
	HotelType      string `json:"hotelType"`
	CabType        string `json:"cabType"`
	Destination    string `json:"destination"`
}
