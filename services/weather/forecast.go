// Package weather generates mock destination forecasts. There is no
// real data source; conditions follow Indian seasons with randomized
// temperature, humidity and wind.
package weather

import (
	"math/rand"
	"time"

	"travelease/models"
)

var conditions = []string{"Sunny", "Cloudy", "Rain", "Thunderstorm", "Heatwave", "Cyclone"}

// Generator produces forecasts from an injected random source so
// callers (and tests) control determinism.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// seasonCondition is the baseline for a month: monsoon rain June
// through September, sun the rest of the year.
func seasonCondition(month time.Month) string {
	if month >= time.June && month <= time.September {
		return "Rain"
	}
	return "Sunny"
}

// Forecast builds a days-long outlook starting at the departure date.
func (g *Generator) Forecast(city string, departure time.Time, days int) models.Forecast {
	if city == "" {
		city = "Unknown"
	}

	out := models.Forecast{City: city, Forecast: make([]models.ForecastDay, 0, days)}
	day := departure
	for i := 0; i < days; i++ {
		condition := seasonCondition(day.Month())
		temp := g.rng.Intn(25) + 20  // 20-44 C
		humidity := g.rng.Intn(60) + 30
		wind := g.rng.Intn(45) + 5

		if g.rng.Float64() > 0.7 {
			condition = conditions[g.rng.Intn(len(conditions))]
		}

		var alert *models.WeatherAlert
		switch {
		case temp > 40:
			condition = "Heatwave"
			alert = &models.WeatherAlert{Severity: "High", Suggestion: "Stay hydrated and avoid outdoors."}
		case condition == "Thunderstorm" || condition == "Cyclone":
			alert = &models.WeatherAlert{Severity: "Critical", Suggestion: "Flight delays possible. Check status."}
		case condition == "Rain" && g.rng.Float64() > 0.8:
			alert = &models.WeatherAlert{Severity: "Medium", Suggestion: "Heavy rains expected."}
		}

		out.Forecast = append(out.Forecast, models.ForecastDay{
			Date:        day.Format("2006-01-02"),
			Temperature: temp,
			Condition:   condition,
			Humidity:    humidity,
			WindSpeed:   wind,
			Alert:       alert != nil,
			AlertDetail: alert,
		})
		day = day.AddDate(0, 0, 1)
	}
	return out
}
