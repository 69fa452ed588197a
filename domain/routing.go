package domain

// RiskInputs are the raw delay-risk factors, conventionally in [0,1].
// Values outside that range are accepted as-is.
type RiskInputs struct {
	TrafficRisk         float64 `json:"trafficRisk"`
	WeatherRisk         float64 `json:"weatherRisk"`
	HistoricalDelayRate float64 `json:"historicalDelayRate"`
	IncidentDensity     float64 `json:"incidentDensity"`
}

// PriorityInputs are the raw clinical-urgency factors, conventionally in [0,1].
type PriorityInputs struct {
	EmergencyLevel       float64 `json:"emergencyLevel"`
	TimeSensitivity      float64 `json:"timeSensitivity"`
	CriticalSupplyFactor float64 `json:"criticalSupplyFactor"`
}

// Route is an immutable catalog entry owned by the serving layer.
type Route struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Distance        string  `json:"distance"`
	BaseTime        float64 `json:"baseTime"`
	RiskFactor      float64 `json:"riskFactor"`
	PriorityPenalty float64 `json:"priorityPenalty"`
	Color           string  `json:"color"`
	Priority        string  `json:"priority"`
}

// ScoredRoute extends a catalog route with the metrics derived for one
// evaluation cycle. Values keep full precision; rounding happens at the
// presentation boundary only.
type ScoredRoute struct {
	Route
	DelayRisk      float64 `json:"delayRisk"`
	ObjectiveValue float64 `json:"objectiveValue"`
	EstimatedTime  float64 `json:"estimatedTime"`
}

// RouteAnalysis is the full result of one engine evaluation.
type RouteAnalysis struct {
	DelayRiskScore       float64       `json:"delayRiskScore"`
	MedicalPriorityScore float64       `json:"medicalPriorityScore"`
	Routes               []ScoredRoute `json:"routes"`
	RecommendedRoute     ScoredRoute   `json:"recommendedRoute"`
	TimeSaved            int           `json:"timeSaved"`
	Report               string        `json:"report"`
}
