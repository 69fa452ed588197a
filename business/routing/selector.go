package routing

import (
	"errors"
	"math"

	"mediSense/domain"
)

// ErrNoCandidates is returned when the selector receives an empty candidate
// set. A recommendation can never silently be absent.
var ErrNoCandidates = errors.New("no candidate routes")

// SelectRecommended returns the route with the minimum objective value.
// The current best is kept unless a challenger is strictly smaller, so
// exact ties resolve to the first route in input order.
func SelectRecommended(routes []domain.ScoredRoute) (domain.ScoredRoute, error) {
	if len(routes) == 0 {
		return domain.ScoredRoute{}, ErrNoCandidates
	}

	best := routes[0]
	for _, challenger := range routes[1:] {
		if challenger.ObjectiveValue < best.ObjectiveValue {
			best = challenger
		}
	}
	return best, nil
}

// ComputeTimeSaved reports the whole minutes the recommended route saves
// over the second-best candidate by objective value. The comparison is
// order-independent and clamps at zero; a single-candidate set saves
// nothing by definition.
func ComputeTimeSaved(routes []domain.ScoredRoute, recommended domain.ScoredRoute) int {
	var second *domain.ScoredRoute
	for i := range routes {
		if routes[i].ID == recommended.ID {
			continue
		}
		if second == nil || routes[i].ObjectiveValue < second.ObjectiveValue {
			second = &routes[i]
		}
	}
	if second == nil {
		return 0
	}

	saved := math.Round(second.EstimatedTime - recommended.EstimatedTime)
	if saved < 0 {
		return 0
	}
	return int(saved)
}
