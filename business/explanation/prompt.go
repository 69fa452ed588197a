package explanation

import (
	"fmt"

	"mediSense/domain"
)

// BuildPrompt renders the instruction sent to the external text generator.
// Every raw input, both derived scores, the selected route, the time saved
// and the confidence string are embedded so the model has the full picture.
func BuildPrompt(in domain.ExplanationInput) string {
	return fmt.Sprintf(`You are the operations analyst of a medical logistics control center.
Write a concise markdown report with exactly these four sections, in this order:
"### Recommended Route", "### Estimated Time Saved", "### Operational Risk Explanation", "### Model Confidence Score".
Bold every numeric value and the route name inline.

Current telemetry:
- traffic risk: %.2f
- weather risk: %.2f
- historical delay rate: %.2f
- incident density: %.2f
- emergency level: %.2f
- time sensitivity: %.2f
- critical supply factor: %.2f

Computed scores:
- composite delay risk score: %.3f
- medical priority score: %.3f

Decision:
- recommended route: %s
- estimated time saved versus the next-best alternative: %d minutes
- model confidence: %s

Explain, in operational language, why this route is recommended given the risk
and priority profile. Close the confidence section by restating the model
confidence of %s.`,
		in.TrafficRisk,
		in.WeatherRisk,
		in.HistoricalDelayRate,
		in.IncidentDensity,
		in.EmergencyLevel,
		in.TimeSensitivity,
		in.CriticalSupplyFactor,
		in.DelayRiskScore,
		in.MedicalPriorityScore,
		in.RecommendedRoute.Name,
		in.TimeSaved,
		in.Accuracy,
		in.Accuracy,
	)
}
