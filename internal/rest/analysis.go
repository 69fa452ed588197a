package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mediSense/business/routing"
	"mediSense/domain"
	"mediSense/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AnalysisHandler struct {
		validate        *validator.Validate
		analysisService AnalysisService
	}

	AnalysisService interface {
		Analyze(ctx context.Context, status domain.LogisticsStatus) (domain.RouteAnalysis, error)
	}

	// AnalyzeRequest mirrors the telemetry snapshot shape. The numeric
	// factors are accepted unvalidated and unclamped; out-of-range values
	// flow through the engine as-is.
	AnalyzeRequest struct {
		TrafficRisk          float64 `json:"trafficRisk"`
		WeatherRisk          float64 `json:"weatherRisk"`
		HistoricalDelayRate  float64 `json:"historicalDelayRate"`
		IncidentDensity      float64 `json:"incidentDensity"`
		EmergencyLevel       float64 `json:"emergencyLevel"`
		TimeSensitivity      float64 `json:"timeSensitivity"`
		CriticalSupplyFactor float64 `json:"criticalSupplyFactor"`
		ModelVersion         string  `json:"modelVersion"`
		Accuracy             string  `json:"accuracy"`
		ActiveFleets         int     `json:"activeFleets"`
		OnTimeRate           string  `json:"onTimeRate"`
	}

	ScoredRouteResponse struct {
		domain.Route
		DelayRisk      float64 `json:"delayRisk"`
		ObjectiveValue float64 `json:"objectiveValue"`
		EstimatedTime  float64 `json:"estimatedTime"`
	}

	AnalyzeResponse struct {
		DelayRiskScore       float64               `json:"delayRiskScore"`
		MedicalPriorityScore float64               `json:"medicalPriorityScore"`
		Routes               []ScoredRouteResponse `json:"routes"`
		RecommendedRoute     ScoredRouteResponse   `json:"recommendedRoute"`
		TimeSaved            int                   `json:"timeSaved"`
		Report               string                `json:"report"`
	}
)

func NewAnalysisHandler(analysisService AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		validate:        validator.New(),
		analysisService: analysisService,
	}
}

// POST /api/v1/logistics/analyze
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	status := domain.LogisticsStatus{
		RiskInputs: domain.RiskInputs{
			TrafficRisk:         req.TrafficRisk,
			WeatherRisk:         req.WeatherRisk,
			HistoricalDelayRate: req.HistoricalDelayRate,
			IncidentDensity:     req.IncidentDensity,
		},
		PriorityInputs: domain.PriorityInputs{
			EmergencyLevel:       req.EmergencyLevel,
			TimeSensitivity:      req.TimeSensitivity,
			CriticalSupplyFactor: req.CriticalSupplyFactor,
		},
		ModelVersion: req.ModelVersion,
		Accuracy:     req.Accuracy,
		ActiveFleets: req.ActiveFleets,
		OnTimeRate:   req.OnTimeRate,
	}

	analysis, err := h.analysisService.Analyze(c.Request().Context(), status)
	if err != nil {
		if errors.Is(err, routing.ErrNoCandidates) {
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.AnalyzeTotal.Inc()
	metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toAnalyzeResponse(analysis)))
}

// toAnalyzeResponse applies the two-decimal display rounding. This is the
// presentation boundary; everything upstream keeps full precision.
func toAnalyzeResponse(analysis domain.RouteAnalysis) AnalyzeResponse {
	routes := make([]ScoredRouteResponse, 0, len(analysis.Routes))
	for _, r := range analysis.Routes {
		routes = append(routes, toScoredRouteResponse(r))
	}

	return AnalyzeResponse{
		DelayRiskScore:       routing.Round2(analysis.DelayRiskScore),
		MedicalPriorityScore: routing.Round2(analysis.MedicalPriorityScore),
		Routes:               routes,
		RecommendedRoute:     toScoredRouteResponse(analysis.RecommendedRoute),
		TimeSaved:            analysis.TimeSaved,
		Report:               analysis.Report,
	}
}

func toScoredRouteResponse(r domain.ScoredRoute) ScoredRouteResponse {
	return ScoredRouteResponse{
		Route:          r.Route,
		DelayRisk:      routing.Round2(r.DelayRisk),
		ObjectiveValue: routing.Round2(r.ObjectiveValue),
		EstimatedTime:  routing.Round2(r.EstimatedTime),
	}
}
