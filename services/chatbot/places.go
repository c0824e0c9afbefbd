package chatbot

import "strings"

// cityPlaces backs the sightseeing widget. Hyderabad doubles as the
// fallback when neither the message nor the booking names a known city.
var cityPlaces = map[string][]string{
	"Hyderabad": {"Charminar", "Golconda Fort", "Ramoji Film City", "Hussain Sagar Lake"},
	"Delhi":     {"India Gate", "Red Fort", "Qutub Minar", "Lotus Temple"},
	"Mumbai":    {"Gateway of India", "Marine Drive", "Elephanta Caves", "Juhu Beach"},
	"Bangalore": {"Lalbagh Garden", "Cubbon Park", "Bangalore Palace", "ISKCON Temple"},
	"Jaipur":    {"Hawa Mahal", "Amber Fort", "City Palace", "Jantar Mantar"},
	"Goa":       {"Baga Beach", "Fort Aguada", "Basilica of Bom Jesus", "Dudhsagar Falls"},
	"Chennai":   {"Marina Beach", "Kapaleeshwarar Temple", "Fort St. George", "Guindy National Park"},
	"Kolkata":   {"Victoria Memorial", "Howrah Bridge", "Dakshineswar Temple", "Indian Museum"},
}

const placesFallbackCity = "Hyderabad"

// cityMentionedIn scans a lowercased message for any known city name.
func cityMentionedIn(lower string) string {
	for city := range cityPlaces {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

// placesFor returns the sightseeing list for a city, falling back to
// the default city's list for unknown destinations.
func placesFor(city string) (string, []string) {
	if p, ok := cityPlaces[city]; ok {
		return city, p
	}
	return city, cityPlaces[placesFallbackCity]
}
