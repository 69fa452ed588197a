package routing

import (
	"math"
	"testing"

	"mediSense/domain"
)

const eps = 1e-9

func TestComputeDelayRisk(t *testing.T) {
	score := ComputeDelayRisk(domain.RiskInputs{
		TrafficRisk:         0.5,
		WeatherRisk:         0.1,
		HistoricalDelayRate: 0.18,
	})

	// 0.4*0.5 + 0.3*0.1 + 0.2*0.18 + 0.1*0 = 0.266
	if math.Abs(score-0.266) > eps {
		t.Fatalf("delay risk score = %v, want 0.266", score)
	}
}

func TestComputePriorityScore(t *testing.T) {
	score := ComputePriorityScore(domain.PriorityInputs{
		EmergencyLevel:       0.9,
		TimeSensitivity:      0.8,
		CriticalSupplyFactor: 0.5,
	})

	want := 0.5*0.9 + 0.3*0.8 + 0.2*0.5
	if math.Abs(score-want) > eps {
		t.Fatalf("priority score = %v, want %v", score, want)
	}
}

// Both score formulas are convex combinations, so unit-interval inputs must
// yield unit-interval scores.
func TestScoresStayInUnitInterval(t *testing.T) {
	samples := []float64{0, 0.25, 0.5, 0.75, 1}

	for _, a := range samples {
		for _, b := range samples {
			risk := ComputeDelayRisk(domain.RiskInputs{
				TrafficRisk:         a,
				WeatherRisk:         b,
				HistoricalDelayRate: 1 - a,
				IncidentDensity:     1 - b,
			})
			if risk < 0 || risk > 1 {
				t.Errorf("delay risk %v out of [0,1] for inputs %v/%v", risk, a, b)
			}

			priority := ComputePriorityScore(domain.PriorityInputs{
				EmergencyLevel:       a,
				TimeSensitivity:      b,
				CriticalSupplyFactor: 1 - a,
			})
			if priority < 0 || priority > 1 {
				t.Errorf("priority score %v out of [0,1] for inputs %v/%v", priority, a, b)
			}
		}
	}
}

// Out-of-range inputs are deliberately not clamped.
func TestScoresAcceptOutOfRangeInputs(t *testing.T) {
	score := ComputeDelayRisk(domain.RiskInputs{TrafficRisk: 2.5})
	if math.Abs(score-1.0) > eps {
		t.Fatalf("delay risk score = %v, want 1.0", score)
	}
}

func TestScoreRouteDerivedMetrics(t *testing.T) {
	alpha := domain.Route{ID: "alpha", Name: "Medical Emergency Corridor (Alpha)", BaseTime: 12, RiskFactor: 0.1, PriorityPenalty: 0}
	beta := domain.Route{ID: "beta", Name: "Ring Road Bypass", BaseTime: 28, RiskFactor: 0.8, PriorityPenalty: 15}

	scoredAlpha := ScoreRoute(alpha, 0.266)
	if math.Abs(scoredAlpha.DelayRisk-0.0266) > eps {
		t.Errorf("alpha delay risk = %v, want 0.0266", scoredAlpha.DelayRisk)
	}
	if math.Abs(scoredAlpha.ObjectiveValue-12.0266) > eps {
		t.Errorf("alpha objective = %v, want 12.0266", scoredAlpha.ObjectiveValue)
	}
	if math.Abs(scoredAlpha.EstimatedTime-12.266) > eps {
		t.Errorf("alpha estimated time = %v, want 12.266", scoredAlpha.EstimatedTime)
	}

	scoredBeta := ScoreRoute(beta, 0.266)
	if math.Abs(scoredBeta.DelayRisk-0.2128) > eps {
		t.Errorf("beta delay risk = %v, want 0.2128", scoredBeta.DelayRisk)
	}
	if math.Abs(scoredBeta.ObjectiveValue-43.2128) > eps {
		t.Errorf("beta objective = %v, want 43.2128", scoredBeta.ObjectiveValue)
	}
}

func TestScoreRoutesPreservesOrder(t *testing.T) {
	routes := []domain.Route{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	scored := ScoreRoutes(routes, 0.5)
	if len(scored) != 3 {
		t.Fatalf("expected 3 scored routes, got %d", len(scored))
	}
	for i, r := range routes {
		if scored[i].ID != r.ID {
			t.Errorf("scored[%d].ID = %q, want %q", i, scored[i].ID, r.ID)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.266, 0.27},
		{12.0266, 12.03},
		{0.125, 0.13},
		{-0.125, -0.13},
		{1, 1},
	}

	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
