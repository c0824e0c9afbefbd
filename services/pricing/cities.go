package pricing

import (
	"strings"

	"travelease/models"
)

// Cities is the supported metro list offered by the planner.
var Cities = []string{
	"Delhi", "Mumbai", "Bangalore", "Hyderabad", "Chennai", "Kolkata",
	"Pune", "Ahmedabad", "Jaipur", "Goa", "Kochi", "Lucknow",
	"Guwahati", "Chandigarh", "Srinagar", "Patna", "Ranchi",
	"Bhubaneswar", "Indore", "Bhopal", "Visakhapatnam", "Nagpur",
	"Vadodara", "Coimbatore", "Madurai", "Varanasi", "Amritsar",
	"Shimla", "Dehradun", "Thiruvananthapuram",
}

// cityData maps the major metros to IATA codes and cost tiers. The
// tier (1.0–1.5) is a market-size multiplier applied by the planner
// blend; cities outside this table default to tier 1.0.
var cityData = map[string]models.City{
	"Delhi":     {Name: "Delhi", IATACode: "DEL", Tier: 1.4},
	"Mumbai":    {Name: "Mumbai", IATACode: "BOM", Tier: 1.5},
	"Hyderabad": {Name: "Hyderabad", IATACode: "HYD", Tier: 1.3},
	"Bangalore": {Name: "Bangalore", IATACode: "BLR", Tier: 1.4},
	"Chennai":   {Name: "Chennai", IATACode: "MAA", Tier: 1.3},
	"Kolkata":   {Name: "Kolkata", IATACode: "CCU", Tier: 1.2},
}

// LookupCity resolves a city by name. Unknown cities get tier 1.0 and a
// placeholder code derived from the name.
func LookupCity(name string) models.City {
	if c, ok := cityData[name]; ok {
		return c
	}
	code := "XXX"
	if name != "" {
		upper := strings.ToUpper(name)
		if len(upper) >= 3 {
			code = upper[:3]
		} else {
			code = upper
		}
	}
	return models.City{Name: name, IATACode: code, Tier: 1.0}
}
