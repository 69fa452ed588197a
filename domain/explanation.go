package domain

// RecommendedRouteRef names the route an explanation talks about.
type RecommendedRouteRef struct {
	Name string `json:"name"`
}

// ExplanationInput is the merged computed object handed to the explanation
// generator: raw inputs, both derived scores, the selected route and the
// display accuracy string (echoed verbatim in the confidence section).
type ExplanationInput struct {
	RiskInputs
	PriorityInputs
	DelayRiskScore       float64             `json:"delayRiskScore"`
	MedicalPriorityScore float64             `json:"medicalPriorityScore"`
	RecommendedRoute     RecommendedRouteRef `json:"recommendedRoute"`
	TimeSaved            int                 `json:"timeSaved"`
	Accuracy             string              `json:"accuracy"`
}
