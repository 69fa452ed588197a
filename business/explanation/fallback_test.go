package explanation

import (
	"strings"
	"testing"

	"mediSense/domain"
)

var reportHeaders = []string{
	"### Recommended Route",
	"### Estimated Time Saved",
	"### Operational Risk Explanation",
	"### Model Confidence Score",
}

func TestFallbackReportHighRiskLifeCritical(t *testing.T) {
	report := FallbackReport(domain.ExplanationInput{
		RiskInputs:           domain.RiskInputs{WeatherRisk: 0.6},
		DelayRiskScore:       0.85,
		MedicalPriorityScore: 0.9,
		RecommendedRoute:     domain.RecommendedRouteRef{Name: "Medical Emergency Corridor (Alpha)"},
		TimeSaved:            16,
		Accuracy:             "94.8%",
	})

	for _, header := range reportHeaders {
		if !strings.Contains(report, header) {
			t.Errorf("report is missing section %q", header)
		}
	}

	for _, phrase := range []string{
		"critical congestion",
		"Life-Critical",
		"weather conditions",
		"Medical Emergency Corridor (Alpha)",
		"**16 minutes**",
		"**94.8%**",
	} {
		if !strings.Contains(report, phrase) {
			t.Errorf("report is missing %q:\n%s", phrase, report)
		}
	}
}

func TestFallbackReportStableTimeSensitive(t *testing.T) {
	report := FallbackReport(domain.ExplanationInput{
		RiskInputs:           domain.RiskInputs{WeatherRisk: 0.1},
		DelayRiskScore:       0.2,
		MedicalPriorityScore: 0.3,
		RecommendedRoute:     domain.RecommendedRouteRef{Name: "Ring Road Bypass (Gamma)"},
		TimeSaved:            3,
		Accuracy:             "93.1%",
	})

	for _, header := range reportHeaders {
		if !strings.Contains(report, header) {
			t.Errorf("report is missing section %q", header)
		}
	}

	if !strings.Contains(report, "stable") {
		t.Errorf("expected stable narrative:\n%s", report)
	}
	if !strings.Contains(report, "Time-Sensitive") {
		t.Errorf("expected Time-Sensitive framing:\n%s", report)
	}
	if strings.Contains(report, "weather conditions") {
		t.Errorf("weather clause must be absent at weatherRisk 0.1:\n%s", report)
	}
}

func TestFallbackReportModerateFriction(t *testing.T) {
	report := FallbackReport(domain.ExplanationInput{
		DelayRiskScore:   0.55,
		RecommendedRoute: domain.RecommendedRouteRef{Name: "Central Hospital Artery (Beta)"},
	})

	if !strings.Contains(report, "moderate friction") {
		t.Errorf("expected moderate friction narrative:\n%s", report)
	}
}

// Tier thresholds are strict greater-than.
func TestFallbackReportThresholdBoundaries(t *testing.T) {
	atCritical := FallbackReport(domain.ExplanationInput{DelayRiskScore: 0.7})
	if strings.Contains(atCritical, "critical congestion") {
		t.Error("0.7 exactly must not trigger the critical tier")
	}
	if !strings.Contains(atCritical, "moderate friction") {
		t.Error("0.7 exactly must fall into the moderate tier")
	}

	atModerate := FallbackReport(domain.ExplanationInput{DelayRiskScore: 0.4})
	if !strings.Contains(atModerate, "stable") {
		t.Error("0.4 exactly must fall into the stable tier")
	}

	atLifeCritical := FallbackReport(domain.ExplanationInput{MedicalPriorityScore: 0.8})
	if strings.Contains(atLifeCritical, "Life-Critical") {
		t.Error("0.8 exactly must keep the Time-Sensitive framing")
	}

	atWeather := FallbackReport(domain.ExplanationInput{RiskInputs: domain.RiskInputs{WeatherRisk: 0.5}})
	if strings.Contains(atWeather, "weather conditions") {
		t.Error("0.5 exactly must not add the weather clause")
	}
}
