package memory

import (
	"context"
	"errors"

	"mediSense/domain"
)

// RouteCatalogRepository serves the static transport-corridor catalog from
// process memory. The catalog is reference data and is never mutated.
type RouteCatalogRepository struct {
	routes []domain.Route
}

func NewRouteCatalogRepository() *RouteCatalogRepository {
	return &RouteCatalogRepository{
		routes: []domain.Route{
			{
				ID:              "alpha",
				Name:            "Medical Emergency Corridor (Alpha)",
				Distance:        "8.2 km",
				BaseTime:        12,
				RiskFactor:      0.1,
				PriorityPenalty: 0,
				Color:           "emerald",
				Priority:        "Critical",
			},
			{
				ID:              "beta",
				Name:            "Central Hospital Artery (Beta)",
				Distance:        "11.5 km",
				BaseTime:        18,
				RiskFactor:      0.45,
				PriorityPenalty: 6,
				Color:           "amber",
				Priority:        "Standard",
			},
			{
				ID:              "gamma",
				Name:            "Ring Road Bypass (Gamma)",
				Distance:        "16.9 km",
				BaseTime:        28,
				RiskFactor:      0.8,
				PriorityPenalty: 15,
				Color:           "rose",
				Priority:        "Standard",
			},
		},
	}
}

func (r *RouteCatalogRepository) FindAll(ctx context.Context) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Route, len(r.routes))
	copy(out, r.routes)
	return out, nil
}

func (r *RouteCatalogRepository) FindByID(ctx context.Context, id string) (domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return domain.Route{}, err
	}

	for _, route := range r.routes {
		if route.ID == id {
			return route, nil
		}
	}
	return domain.Route{}, errors.New("route not found")
}
