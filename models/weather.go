package models

// WeatherAlert carries severity and advice for a risky forecast day.
type WeatherAlert struct {
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}

// ForecastDay is one day of the mock forecast.
type ForecastDay struct {
	Date        string        `json:"date"`
	Temperature int           `json:"temperature"`
	Condition   string        `json:"condition"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"windSpeed"`
	Alert       bool          `json:"alert"`
	AlertDetail *WeatherAlert `json:"alertDetails,omitempty"`
}

// Forecast is the multi-day outlook for a destination city.
type Forecast struct {
	City     string        `json:"city"`
	Forecast []ForecastDay `json:"forecast"`
}

// GateStatus is the simulated gate-prediction payload. ColorCode is
// "Green", "Mango Yellow" or "Red".
type GateStatus struct {
	FlightID      string `json:"flightId"`
	Airline       string `json:"airline"`
	AirportCode   string `json:"airportCode"`
	Terminal      string `json:"terminal"`
	AssignedGate  string `json:"assignedGate"`
	PredictedGate string `json:"predictedGate"`
	GateStatus    string `json:"gateStatus"` // "same", "may-change", "changed"
	Alert         bool   `json:"alert"`
	ColorCode     string `json:"colorCode"`
	Message       string `json:"message,omitempty"`
}
