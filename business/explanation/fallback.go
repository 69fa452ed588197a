package explanation

import (
	"fmt"
	"strings"

	"mediSense/domain"
)

// Delay-risk tiers checked in priority order, strict greater-than.
const (
	criticalRiskThreshold = 0.7
	moderateRiskThreshold = 0.4
)

// Priority tier above which a shipment is framed as Life-Critical.
const lifeCriticalThreshold = 0.8

// Weather only enters the narrative once it is a meaningful factor.
const weatherClauseThreshold = 0.5

// FallbackReport composes the deterministic four-section markdown report.
// It is the output of the no-credential branch and the recovery output
// whenever the external generator fails.
func FallbackReport(in domain.ExplanationInput) string {
	var risk string
	switch {
	case in.DelayRiskScore > criticalRiskThreshold:
		risk = fmt.Sprintf(
			"The corridor network is showing critical congestion, and the composite delay risk score of **%.2f** reflects severe pressure on every major artery.",
			in.DelayRiskScore,
		)
	case in.DelayRiskScore > moderateRiskThreshold:
		risk = fmt.Sprintf(
			"There is moderate friction across the corridor network; the composite delay risk score of **%.2f** indicates slower but workable transit conditions.",
			in.DelayRiskScore,
		)
	default:
		risk = fmt.Sprintf(
			"Corridor conditions are stable, with a composite delay risk score of **%.2f** well inside normal operating range.",
			in.DelayRiskScore,
		)
	}

	var priority string
	if in.MedicalPriorityScore > lifeCriticalThreshold {
		priority = fmt.Sprintf(
			"This shipment is classified **Life-Critical** (priority score **%.2f**), so minimizing transit time takes precedence over all other factors.",
			in.MedicalPriorityScore,
		)
	} else {
		priority = fmt.Sprintf(
			"This shipment is classified **Time-Sensitive** (priority score **%.2f**), favoring the fastest corridor that keeps delay risk contained.",
			in.MedicalPriorityScore,
		)
	}

	weather := ""
	if in.WeatherRisk > weatherClauseThreshold {
		weather = " Deteriorating weather conditions are an additional factor and may extend transit times further."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### Recommended Route\n**%s** currently offers the lowest combined delay risk and transit cost.\n\n", in.RecommendedRoute.Name)
	fmt.Fprintf(&b, "### Estimated Time Saved\nDispatching via this corridor saves an estimated **%d minutes** over the next-best alternative.\n\n", in.TimeSaved)
	fmt.Fprintf(&b, "### Operational Risk Explanation\n%s %s%s Proceed with dispatch via **%s**.\n\n", risk, priority, weather, in.RecommendedRoute.Name)
	fmt.Fprintf(&b, "### Model Confidence Score\nThe risk model reports a confidence of **%s** for this recommendation.\n", in.Accuracy)

	return b.String()
}
