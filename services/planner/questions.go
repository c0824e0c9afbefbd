package planner

import "travelease/models"

// Question is one step of the guided flow. A nil Condition means the
// question is always asked; otherwise it is skipped whenever the
// predicate over the answers collected so far is false.
type Question struct {
	ID          int
	Key         string
	Text        string
	Type        string // "number", "option", "search" or "date"
	Options     []string
	Placeholder string
	Condition   func(answers map[string]string) bool
}

// View strips the predicate for serialization.
func (q Question) View() models.QuestionView {
	return models.QuestionView{
		ID:          q.ID,
		Key:         q.Key,
		Text:        q.Text,
		Type:        q.Type,
		Options:     q.Options,
		Placeholder: q.Placeholder,
	}
}

func hotelStay(a map[string]string) bool {
	return a["tripType"] == models.TripRoundTrip || a["stayInHotel"] == "Yes"
}

// questions is the full guided flow in asking order. Keys and skip
// conditions are load-bearing: the estimator and the result formatting
// read answers by these keys.
var questions = []Question{
	{ID: 1, Key: "budget", Text: "What is your total budget for this trip?", Type: "number", Placeholder: "e.g. 25000"},
	{ID: 2, Key: "tripType", Text: "Is this a one-way or round trip?", Type: "option", Options: []string{models.TripOneWay, models.TripRoundTrip}},
	{ID: 3, Key: "source", Text: "Which city are you travelling from?", Type: "search", Placeholder: "e.g. Delhi"},
	{ID: 4, Key: "destination", Text: "Where are you headed?", Type: "search", Placeholder: "e.g. Goa"},
	{ID: 5, Key: "departureDate", Text: "When do you want to depart?", Type: "date"},
	{ID: 6, Key: "returnDate", Text: "And when will you return?", Type: "date",
		Condition: func(a map[string]string) bool { return a["tripType"] == models.TripRoundTrip }},
	{ID: 7, Key: "travelers", Text: "How many travellers?", Type: "number", Placeholder: "1"},
	{ID: 8, Key: "specialPassengers", Text: "Any special passengers in the group?", Type: "option", Options: []string{"Yes", "No"}},
	{ID: 9, Key: "specialType", Text: "What kind of special passenger?", Type: "option", Options: []string{"Child", "Senior"},
		Condition: func(a map[string]string) bool { return a["specialPassengers"] == "Yes" }},
	{ID: 10, Key: "flightClass", Text: "Which cabin class would you like?", Type: "option",
		Options: []string{models.ClassEconomy, models.ClassPremiumEconomy, models.ClassBusiness, models.ClassFirst}},
	{ID: 11, Key: "flightTime", Text: "Preferred departure time?", Type: "option", Options: []string{"Morning", "Afternoon", "Evening", "Night"}},
	{ID: 12, Key: "stayInHotel", Text: "Will you be staying in a hotel?", Type: "option", Options: []string{"Yes", "No"},
		Condition: func(a map[string]string) bool { return a["tripType"] == models.TripOneWay }},
	{ID: 13, Key: "nights", Text: "How many nights?", Type: "number", Placeholder: "3", Condition: hotelStay},
	{ID: 14, Key: "roomType", Text: "What room type do you prefer?", Type: "option", Options: []string{"Standard", "Deluxe", "Presidential"}, Condition: hotelStay},
	{ID: 15, Key: "hotelRating", Text: "Minimum hotel rating?", Type: "option", Options: []string{"3 Star", "4 Star", "5 Star"}, Condition: hotelStay},
	{ID: 16, Key: "pickup", Text: "Do you need an airport pickup?", Type: "option", Options: []string{"Yes", "No"}},
	{ID: 17, Key: "vehicle", Text: "Which vehicle works for you?", Type: "option", Options: []string{"Auto", "Bike", "Sedan", "SUV"}},
	{ID: 18, Key: "diet", Text: "Any dietary preference?", Type: "option", Options: []string{"Veg", "Non-Veg", "Jain", "No preference"}},
	{ID: 19, Key: "sightseeing", Text: "Would you like sightseeing included?", Type: "option", Options: []string{"Yes", "No"}},
	{ID: 20, Key: "optimization", Text: "What should we optimize for?", Type: "option",
		Options: []string{models.OptimizeLowestCost, models.OptimizeComfort, models.OptimizeLuxury}},
}

// Questions returns the flow definition.
func Questions() []Question {
	return questions
}

// nextStep advances from the given index to the next question whose
// condition holds for the answers. Returns len(questions) when the
// flow is exhausted.
func nextStep(from int, answers map[string]string) int {
	step := from + 1
	for step < len(questions) {
		q := questions[step]
		if q.Condition == nil || q.Condition(answers) {
			break
		}
		step++
	}
	return step
}
