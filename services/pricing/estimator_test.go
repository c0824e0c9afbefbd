package pricing

import (
	"testing"

	"travelease/models"
)

func TestEstimateDistance(t *testing.T) {
	cases := []struct {
		name  string
		a, b  string
	}{
		{"metros", "Delhi", "Mumbai"},
		{"reversed pair", "Goa", "Jaipur"},
		{"unknown cities", "Smalltown", "Nowhere"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d1 := EstimateDistance(tc.a, tc.b)
			d2 := EstimateDistance(tc.b, tc.a)
			if d1 != d2 {
				t.Fatalf("distance not symmetric: %d vs %d", d1, d2)
			}
			if d1 < 200 || d1 > 1699 {
				t.Fatalf("distance %d outside [200,1699]", d1)
			}
		})
	}
}

func TestEstimateDistanceSameCity(t *testing.T) {
	if d := EstimateDistance("Delhi", "Delhi"); d != SameCityDistanceKm {
		t.Fatalf("same city expected %d got %d", SameCityDistanceKm, d)
	}
	if d := EstimateDistance("", "Mumbai"); d != SameCityDistanceKm {
		t.Fatalf("missing city expected %d got %d", SameCityDistanceKm, d)
	}
}

// The hash runs in int32 with wraparound; this pins the documented
// reference value so an accidental widening of the arithmetic fails
// loudly.
func TestEstimateDistanceFixedValue(t *testing.T) {
	if d := EstimateDistance("Delhi", "Mumbai"); d != 1690 {
		t.Fatalf("Delhi-Mumbai expected 1690 got %d", d)
	}
}

func TestEstimateFlightPriceReference(t *testing.T) {
	dist := EstimateDistance("Delhi", "Mumbai")
	got := EstimateFlightPrice(dist, models.ClassEconomy, models.TripOneWay, 1, FlightAddOns{})
	if got != 9105 {
		t.Fatalf("Delhi-Mumbai economy one-way expected 9105 got %d", got)
	}
	// Reproducible across repeated calls.
	if again := EstimateFlightPrice(dist, models.ClassEconomy, models.TripOneWay, 1, FlightAddOns{}); again != got {
		t.Fatalf("price not reproducible: %d vs %d", got, again)
	}
}

func TestEstimateFlightPriceMonotonicInDistance(t *testing.T) {
	for _, class := range []string{models.ClassEconomy, models.ClassPremiumEconomy, models.ClassBusiness, models.ClassFirst} {
		prev := int64(-1)
		for dist := 200; dist <= 1600; dist += 200 {
			p := EstimateFlightPrice(dist, class, models.TripOneWay, 1, FlightAddOns{})
			if p <= prev {
				t.Fatalf("%s: price not increasing at distance %d: %d <= %d", class, dist, p, prev)
			}
			prev = p
		}
	}
}

func TestEstimateFlightPriceMonotonicInTravelers(t *testing.T) {
	prev := int64(-1)
	for travelers := 1; travelers <= 9; travelers++ {
		p := EstimateFlightPrice(800, models.ClassBusiness, models.TripRoundTrip, travelers, FlightAddOns{})
		if p <= prev {
			t.Fatalf("price not increasing at %d travelers: %d <= %d", travelers, p, prev)
		}
		prev = p
	}
}

func TestEstimateFlightPriceRoundTripRatio(t *testing.T) {
	for _, dist := range []int{200, 777, 1699} {
		oneWay := EstimateFlightPrice(dist, models.ClassEconomy, models.TripOneWay, 2, FlightAddOns{})
		roundTrip := EstimateFlightPrice(dist, models.ClassEconomy, models.TripRoundTrip, 2, FlightAddOns{})
		if float64(roundTrip) < 1.79*float64(oneWay) {
			t.Fatalf("round trip %d below 1.79x one way %d at distance %d", roundTrip, oneWay, dist)
		}
	}
}

func TestEstimateFlightPriceAddOns(t *testing.T) {
	base := EstimateFlightPrice(500, models.ClassEconomy, models.TripOneWay, 1, FlightAddOns{})

	cases := []struct {
		name   string
		addOns FlightAddOns
		want   int64
	}{
		{"refundable", FlightAddOns{Refundable: true}, base + 1500},
		{"meal preference", FlightAddOns{Meal: "Veg"}, base + 500},
		{"no preference meal", FlightAddOns{Meal: "No Preference"}, base},
		{"heavy baggage", FlightAddOns{Baggage: "25kg"}, base + 1500},
		{"light baggage", FlightAddOns{Baggage: "5kg"}, base - 500},
		{"standard baggage", FlightAddOns{Baggage: "15kg"}, base},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateFlightPrice(500, models.ClassEconomy, models.TripOneWay, 1, tc.addOns)
			if got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestClassMultiplierFallback(t *testing.T) {
	if m := ClassMultiplier("Steerage"); m != 1.0 {
		t.Fatalf("unknown class expected 1.0 got %v", m)
	}
	if m := RoomTypeMultiplier("Penthouse"); m != 1.0 {
		t.Fatalf("unknown room type expected 1.0 got %v", m)
	}
}

func TestEstimateHotelPriceScaling(t *testing.T) {
	byTravelers := EstimateHotelPrice(4500, 1.5, 3, 2, ScaleByTravelers)
	if byTravelers != 13500 {
		t.Fatalf("traveler scaling expected 13500 got %d", byTravelers)
	}
	byNights := EstimateHotelPrice(4500, 1.5, 3, 2, ScaleByNights)
	if byNights != 20250 {
		t.Fatalf("night scaling expected 20250 got %d", byNights)
	}
}

func TestEstimateCabPrice(t *testing.T) {
	day := EstimateCabPrice(60, 18, 25, false)
	if day != 510 {
		t.Fatalf("day fare expected 510 got %d", day)
	}
	night := EstimateCabPrice(60, 18, 25, true)
	if night != 638 {
		t.Fatalf("night fare expected 638 got %d", night)
	}
}

func TestIsNightHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 22 || hour < 6
		if got := IsNightHour(hour); got != want {
			t.Fatalf("hour %d: expected %v got %v", hour, want, got)
		}
	}
}

func TestAggregate(t *testing.T) {
	cases := []struct {
		name    string
		f, h, c int64
	}{
		{"all components", 9105, 13500, 510},
		{"flight only", 5000, 0, 0},
		{"zeros", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Aggregate(tc.f, tc.h, tc.c)
			if b.Total != tc.f+tc.h+tc.c {
				t.Fatalf("total %d != sum %d", b.Total, tc.f+tc.h+tc.c)
			}
			if b.Flight != tc.f || b.Hotel != tc.h || b.Cab != tc.c {
				t.Fatalf("components mutated: %+v", b)
			}
		})
	}
}
