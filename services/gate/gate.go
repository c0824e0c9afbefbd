// Package gate simulates airport gate-change predictions. One of three
// outcomes is rolled per lookup: Green (gate holds), Mango Yellow
// (may change) or Red (already changed).
package gate

import (
	"math/rand"

	"travelease/models"
)

type Predictor struct {
	rng *rand.Rand
}

func NewPredictor(seed int64) *Predictor {
	return &Predictor{rng: rand.New(rand.NewSource(seed))}
}

// Status rolls a simulated gate prediction for a flight.
func (p *Predictor) Status(flightID string) models.GateStatus {
	if flightID == "" {
		flightID = "F101"
	}

	g := models.GateStatus{
		FlightID:      flightID,
		Airline:       "IndiGo",
		AirportCode:   "HYD",
		Terminal:      "1",
		AssignedGate:  "12A",
		PredictedGate: "12A",
		GateStatus:    "same",
		ColorCode:     "Green",
	}

	switch p.rng.Intn(3) {
	case 1:
		g.GateStatus = "may-change"
		g.PredictedGate = "14B"
		g.ColorCode = "Mango Yellow"
		g.Alert = true
		g.Message = "Gate assignment is unstable. Check monitors."
	case 2:
		g.GateStatus = "changed"
		g.PredictedGate = "4D"
		g.ColorCode = "Red"
		g.Alert = true
		g.Message = "Gate Changed to 4D!"
	}
	return g
}
