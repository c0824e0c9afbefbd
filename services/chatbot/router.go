package chatbot

import (
	"context"
	"fmt"
	"strings"

	"travelease/models"
	"travelease/utils"

	"go.uber.org/zap"
)

// BookingLister is the slice of the booking service the router needs.
type BookingLister interface {
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// Service resolves a chat message into a response, optionally with a
// widget payload.
type Service interface {
	Respond(ctx context.Context, req models.ChatRequest) models.ChatResponse
}

// DefaultChatService routes messages through an ordered keyword rule
// list. Rules are checked top to bottom and the first hit wins; an
// explicit quick-action id short-circuits keyword matching for its
// intent.
type DefaultChatService struct {
	Bookings    BookingLister
	ActiveTrips ActiveTripStore
	Gemini      *GeminiClient
}

func NewChatService(bookings BookingLister, activeTrips ActiveTripStore, gemini *GeminiClient) *DefaultChatService {
	return &DefaultChatService{Bookings: bookings, ActiveTrips: activeTrips, Gemini: gemini}
}

const (
	respWeatherNoBooking = "I couldn't find an upcoming trip to check the weather for. Book a trip first!"
	respGateNoBooking    = "I need an active flight booking to look up gate predictions."
	respNoBookings       = "You have no bookings yet."
	respFlightPrompt     = "You can search and compare flights from the Flights page. Want me to suggest a route?"
	respHotelPrompt      = "Browse hotels by city on the Hotels page. Tell me a destination and I can list places to see."
	respCabPrompt        = "Cabs can be booked from the Cabs page. Night rides carry a 25% surcharge."
	respBudgetPrompt     = "Tell the AI planner your budget and it will assemble a full trip for you."
	respNotAvailable     = "That action isn't available from chat yet. Please use the My Bookings page."
	respSwitchPrompt     = "Which trip would you like to switch to?"
	respFallback         = "I'm not sure about that one. Try asking about weather, gate info, bookings or places to explore."
)

// Respond applies the rule list to one incoming message.
func (s *DefaultChatService) Respond(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	lower := strings.ToLower(req.Text)
	booking := s.relevantBooking(ctx, req.UserID)

	switch {
	case req.ActionID == "select_trip":
		return s.selectTrip(ctx, req.UserID, req.Text)

	case req.ActionID == "weather" || strings.Contains(lower, "weather"):
		return s.weatherResponse(booking)

	case req.ActionID == "gate" || strings.Contains(lower, "gate"):
		return s.gateResponse(booking)

	case req.ActionID == "places" || strings.Contains(lower, "places") ||
		strings.Contains(lower, "visit") || strings.Contains(lower, "explore"):
		return placesResponse(lower, booking)

	case req.ActionID == "bookings" || strings.Contains(lower, "booking"):
		return bookingsResponse(booking)

	case req.ActionID == "flight" || strings.Contains(lower, "flight"):
		return models.ChatResponse{Intent: "flight", ResponseText: respFlightPrompt}

	case req.ActionID == "hotel" || strings.Contains(lower, "hotel"):
		return models.ChatResponse{Intent: "hotel", ResponseText: respHotelPrompt}

	case req.ActionID == "cab" || strings.Contains(lower, "cab") || strings.Contains(lower, "taxi"):
		return models.ChatResponse{Intent: "cab", ResponseText: respCabPrompt}

	case req.ActionID == "budget" || strings.Contains(lower, "budget") || strings.Contains(lower, "cost"):
		return models.ChatResponse{Intent: "budget", ResponseText: respBudgetPrompt}

	case req.ActionID == "rebook" || req.ActionID == "cancel":
		return models.ChatResponse{Intent: "action_not_available", ResponseText: respNotAvailable}

	case req.ActionID == "switch_trip":
		return s.switchTripResponse(ctx, req.UserID)

	case strings.Contains(lower, "hi") || strings.Contains(lower, "hello"):
		return models.ChatResponse{Intent: "greeting", ResponseText: greeting(req.UserID)}

	default:
		return s.fallback(ctx, req.Text)
	}
}

// relevantBooking picks the booking the conversation is about: the
// explicitly selected active trip if one is set and still exists,
// otherwise the newest booking. Returns nil when the user has none.
func (s *DefaultChatService) relevantBooking(ctx context.Context, userID string) *models.Booking {
	if userID == "" || s.Bookings == nil {
		return nil
	}
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("Chat booking lookup failed", zap.String("userID", userID), zap.Error(err))
		return nil
	}
	if len(bookings) == 0 {
		return nil
	}

	if s.ActiveTrips != nil {
		if activeID, err := s.ActiveTrips.Get(ctx, userID); err == nil && activeID != "" {
			for i := range bookings {
				if bookings[i].ID == activeID {
					return &bookings[i]
				}
			}
		}
	}
	return &bookings[0]
}

func (s *DefaultChatService) weatherResponse(booking *models.Booking) models.ChatResponse {
	if booking == nil {
		return models.ChatResponse{Intent: "weather", ResponseText: respWeatherNoBooking}
	}
	city := booking.TripData.Destination
	return models.ChatResponse{
		Intent:       "weather",
		ResponseText: fmt.Sprintf("Here is the weather outlook for %s:", city),
		WidgetType:   "weather",
		WidgetData: models.ChatWeatherWidget{
			City: city,
			Forecast: []models.ChatWeatherDay{
				{Day: "Mon", Temp: "28°C", Icon: "☀️"},
				{Day: "Tue", Temp: "27°C", Icon: "⛅"},
				{Day: "Wed", Temp: "29°C", Icon: "☀️"},
			},
		},
	}
}

func (s *DefaultChatService) gateResponse(booking *models.Booking) models.ChatResponse {
	if booking == nil {
		return models.ChatResponse{Intent: "gate", ResponseText: respGateNoBooking}
	}
	return models.ChatResponse{
		Intent:       "gate",
		ResponseText: "Let me check the gate history for your flight:",
		WidgetType:   "gate",
		WidgetData: models.ChatGateWidget{
			Flight:     "AI-203",
			Airline:    "Air India",
			Prediction: "Gate 12 (may change)",
			Status:     "Confirmed",
			Terminal:   "T3",
		},
	}
}

func placesResponse(lower string, booking *models.Booking) models.ChatResponse {
	city := cityMentionedIn(lower)
	if city == "" && booking != nil {
		city = booking.TripData.Destination
	}
	if city == "" {
		city = placesFallbackCity
	}
	city, places := placesFor(city)
	return models.ChatResponse{
		Intent:       "places",
		ResponseText: fmt.Sprintf("Here are some places worth visiting in %s:", city),
		WidgetType:   "places",
		WidgetData:   models.ChatPlacesWidget{City: city, Places: places},
	}
}

func bookingsResponse(booking *models.Booking) models.ChatResponse {
	if booking == nil {
		return models.ChatResponse{Intent: "bookings", ResponseText: respNoBookings}
	}

	trip := booking.TripData
	if trip.TripType == models.TripRoundTrip {
		// Round trips get one card per leg.
		return models.ChatResponse{
			Intent:       "bookings",
			ResponseText: "Here is your latest booking:",
			WidgetType:   "multi_booking",
			WidgetData: []models.BookingCard{
				{
					ID:        booking.ID,
					Label:     "Departure Flight",
					Route:     fmt.Sprintf("%s → %s", trip.Source, trip.Destination),
					Date:      trip.DepartureDate,
					Passenger: "Traveler",
					Status:    booking.Status,
				},
				{
					ID:        booking.ID + "-ret",
					Label:     "Return Flight",
					Route:     fmt.Sprintf("%s → %s", trip.Destination, trip.Source),
					Date:      trip.ReturnDate,
					Passenger: "Traveler",
					Status:    booking.Status,
				},
			},
		}
	}

	return models.ChatResponse{
		Intent:       "bookings",
		ResponseText: "Here is your latest booking:",
		WidgetType:   "booking_card",
		WidgetData: models.BookingCard{
			ID:        booking.ID,
			Route:     fmt.Sprintf("%s → %s", trip.Source, trip.Destination),
			Date:      trip.DepartureDate,
			Passenger: "Traveler",
			Status:    booking.Status,
		},
	}
}

func (s *DefaultChatService) switchTripResponse(ctx context.Context, userID string) models.ChatResponse {
	if userID == "" {
		return models.ChatResponse{Intent: "switch_trip", ResponseText: "Please log in to switch trips."}
	}
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil || len(bookings) == 0 {
		return models.ChatResponse{Intent: "switch_trip", ResponseText: respNoBookings}
	}

	choices := make([]models.TripChoice, 0, len(bookings))
	for _, b := range bookings {
		choices = append(choices, models.TripChoice{
			ID:    b.ID,
			Route: fmt.Sprintf("%s → %s", b.TripData.Source, b.TripData.Destination),
			Date:  b.TripData.DepartureDate,
		})
	}
	return models.ChatResponse{
		Intent:       "switch_trip",
		ResponseText: respSwitchPrompt,
		WidgetType:   "trip_selector",
		WidgetData:   choices,
	}
}

// selectTrip pins the chosen booking as the user's active trip.
func (s *DefaultChatService) selectTrip(ctx context.Context, userID, bookingID string) models.ChatResponse {
	if userID == "" {
		return models.ChatResponse{Intent: "switch_trip", ResponseText: "Please log in to switch trips."}
	}
	bookings, err := s.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return models.ChatResponse{Intent: "switch_trip", ResponseText: respNoBookings}
	}

	for _, b := range bookings {
		if b.ID != bookingID {
			continue
		}
		if s.ActiveTrips != nil {
			if err := s.ActiveTrips.Set(ctx, userID, bookingID); err != nil {
				utils.GetLogger().Warn("Active trip save failed", zap.String("userID", userID), zap.Error(err))
			}
		}
		return models.ChatResponse{
			Intent:       "switch_trip",
			ResponseText: fmt.Sprintf("Done! Your active trip is now %s.", b.TripData.Destination),
		}
	}
	return models.ChatResponse{Intent: "switch_trip", ResponseText: respNoBookings}
}

func greeting(userID string) string {
	name := "Traveler"
	if userID != "" {
		name = userID
	}
	return fmt.Sprintf("Hi %s! I'm your TravelEase assistant. Ask me about weather, gates, bookings or places to visit.", name)
}

// fallback consults Gemini when a client is configured, otherwise
// returns the static line. Gemini errors degrade to the static line
// too; chat never surfaces an error to the user.
func (s *DefaultChatService) fallback(ctx context.Context, text string) models.ChatResponse {
	if s.Gemini != nil {
		prompt := fmt.Sprintf("You are TravelEase, a travel booking assistant for trips within India. Answer briefly: %s", text)
		if reply, err := s.Gemini.GenerateContent(ctx, prompt); err == nil && reply != "" {
			return models.ChatResponse{Intent: "ai", ResponseText: reply}
		} else if err != nil {
			utils.GetLogger().Warn("Gemini fallback failed", zap.Error(err))
		}
	}
	return models.ChatResponse{Intent: "fallback", ResponseText: respFallback}
}
