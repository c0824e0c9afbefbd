package gate

import "testing"

func TestStatusOutcomes(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(0); seed < 30; seed++ {
		g := NewPredictor(seed).Status("6E-456")
		seen[g.ColorCode] = true

		if g.FlightID != "6E-456" {
			t.Fatalf("flight id lost: %q", g.FlightID)
		}
		switch g.ColorCode {
		case "Green":
			if g.GateStatus != "same" || g.Alert || g.PredictedGate != g.AssignedGate {
				t.Fatalf("inconsistent green status: %+v", g)
			}
		case "Mango Yellow":
			if g.GateStatus != "may-change" || !g.Alert || g.PredictedGate == g.AssignedGate {
				t.Fatalf("inconsistent yellow status: %+v", g)
			}
		case "Red":
			if g.GateStatus != "changed" || !g.Alert || g.PredictedGate != "4D" {
				t.Fatalf("inconsistent red status: %+v", g)
			}
		default:
			t.Fatalf("unknown color code %q", g.ColorCode)
		}
	}

	// Over 30 seeds all three outcomes should show up.
	for _, color := range []string{"Green", "Mango Yellow", "Red"} {
		if !seen[color] {
			t.Fatalf("outcome %s never rolled", color)
		}
	}
}

func TestStatusDefaultFlight(t *testing.T) {
	g := NewPredictor(1).Status("")
	if g.FlightID != "F101" {
		t.Fatalf("expected default flight id got %q", g.FlightID)
	}
}
