package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	UserID   string `json:"user_id"`
	Text     string `json:"text"`               // typed message
	ActionID string `json:"action_id,omitempty"` // pre-selected quick action, wins over keywords
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Intent       string      `json:"intent"`
	ResponseText string      `json:"response"`
	WidgetType   string      `json:"widgetType,omitempty"` // "weather", "gate", "places", "booking_card", "multi_booking", "trip_selector"
	WidgetData   interface{} `json:"widgetData,omitempty"`
}

// BookingCard is the chat widget summarising one flight booking leg.
type BookingCard struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	Route     string `json:"route"`
	Date      string `json:"date"`
	Passenger string `json:"passenger"`
	Status    string `json:"status"`
}

// TripChoice is one entry of the switch-trip selector widget.
type TripChoice struct {
	ID    string `json:"id"`
	Route string `json:"route"`
	Date  string `json:"date"`
}

// ChatWeatherDay is one column of the inline chat forecast widget.
type ChatWeatherDay struct {
	Day  string `json:"day"`
	Temp string `json:"temp"`
	Icon string `json:"icon"`
}

// ChatWeatherWidget is the compact forecast shown inside the chat.
type ChatWeatherWidget struct {
	City     string           `json:"city"`
	Forecast []ChatWeatherDay `json:"forecast"`
}

// ChatGateWidget is the inline gate-prediction card.
type ChatGateWidget struct {
	Flight     string `json:"flight"`
	Airline    string `json:"airline"`
	Prediction string `json:"prediction"`
	Status     string `json:"status"`
	Terminal   string `json:"terminal"`
}

// ChatPlacesWidget lists sightseeing spots for a city.
type ChatPlacesWidget struct {
	City   string   `json:"city"`
	Places []string `json:"places"`
}
