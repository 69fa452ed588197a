package routing

import (
	"math"

	"mediSense/domain"
)

// Delay risk weights. They sum to 1, so inputs in [0,1] yield a score in [0,1].
const (
	trafficWeight    = 0.4
	weatherWeight    = 0.3
	historicalWeight = 0.2
	incidentWeight   = 0.1
)

// Medical priority weights, same convex-combination property.
const (
	emergencyWeight   = 0.5
	sensitivityWeight = 0.3
	supplyWeight      = 0.2
)

// ComputeDelayRisk returns the weighted composite delay-risk score.
// Inputs are taken as-is; out-of-range values are not clamped.
func ComputeDelayRisk(in domain.RiskInputs) float64 {
	return trafficWeight*in.TrafficRisk +
		weatherWeight*in.WeatherRisk +
		historicalWeight*in.HistoricalDelayRate +
		incidentWeight*in.IncidentDensity
}

// ComputePriorityScore returns the weighted composite medical-priority score.
func ComputePriorityScore(in domain.PriorityInputs) float64 {
	return emergencyWeight*in.EmergencyLevel +
		sensitivityWeight*in.TimeSensitivity +
		supplyWeight*in.CriticalSupplyFactor
}

// ScoreRoute derives the per-route metrics for one evaluation cycle.
// Full precision is kept here; callers round for display only.
func ScoreRoute(route domain.Route, delayRiskScore float64) domain.ScoredRoute {
	delayRisk := delayRiskScore * route.RiskFactor
	return domain.ScoredRoute{
		Route:          route,
		DelayRisk:      delayRisk,
		ObjectiveValue: delayRisk + route.BaseTime + route.PriorityPenalty,
		EstimatedTime:  route.BaseTime + delayRisk*10,
	}
}

// ScoreRoutes scores every catalog route against the same delay-risk score,
// preserving input order.
func ScoreRoutes(routes []domain.Route, delayRiskScore float64) []domain.ScoredRoute {
	scored := make([]domain.ScoredRoute, 0, len(routes))
	for _, route := range routes {
		scored = append(scored, ScoreRoute(route, delayRiskScore))
	}
	return scored
}

// Round2 rounds half away from zero to two decimals. Presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
