package routing

import (
	"context"
	"fmt"

	"mediSense/domain"
	"mediSense/pkg/logger"
)

// RouteCatalog contract interface
type RouteCatalog interface {
	FindAll(ctx context.Context) ([]domain.Route, error)
}

// Explainer turns a completed evaluation into a markdown report. It never
// fails; at worst it degrades to the deterministic template.
type Explainer interface {
	Generate(ctx context.Context, input domain.ExplanationInput) string
}

type routingService struct {
	catalog   RouteCatalog
	explainer Explainer
}

func NewRoutingService(catalog RouteCatalog, explainer Explainer) *routingService {
	return &routingService{
		catalog:   catalog,
		explainer: explainer,
	}
}

// Analyze runs one full evaluation cycle: score the catalog against the
// snapshot, pick the recommendation, and attach the explanation report.
// Nothing is retained between calls.
func (s *routingService) Analyze(ctx context.Context, status domain.LogisticsStatus) (domain.RouteAnalysis, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when analyzing routes")
		return domain.RouteAnalysis{}, fmt.Errorf("context error: %w", err)
	}

	routes, err := s.catalog.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load route catalog", err)
		return domain.RouteAnalysis{}, fmt.Errorf("failed to load route catalog: %w", err)
	}

	delayRiskScore := ComputeDelayRisk(status.RiskInputs)
	priorityScore := ComputePriorityScore(status.PriorityInputs)

	scored := ScoreRoutes(routes, delayRiskScore)
	recommended, err := SelectRecommended(scored)
	if err != nil {
		logger.Error("route selection failed", err)
		return domain.RouteAnalysis{}, err
	}
	timeSaved := ComputeTimeSaved(scored, recommended)

	report := s.explainer.Generate(ctx, domain.ExplanationInput{
		RiskInputs:           status.RiskInputs,
		PriorityInputs:       status.PriorityInputs,
		DelayRiskScore:       delayRiskScore,
		MedicalPriorityScore: priorityScore,
		RecommendedRoute:     domain.RecommendedRouteRef{Name: recommended.Name},
		TimeSaved:            timeSaved,
		Accuracy:             status.Accuracy,
	})

	return domain.RouteAnalysis{
		DelayRiskScore:       delayRiskScore,
		MedicalPriorityScore: priorityScore,
		Routes:               scored,
		RecommendedRoute:     recommended,
		TimeSaved:            timeSaved,
		Report:               report,
	}, nil
}
