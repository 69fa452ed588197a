package domain

// LogisticsStatus is one telemetry snapshot as served to the dashboard.
// The embedded inputs feed the scoring engine; the remaining fields are
// passthrough display values and never enter the arithmetic.
type LogisticsStatus struct {
	RiskInputs
	PriorityInputs
	ModelVersion string `json:"modelVersion"`
	Accuracy     string `json:"accuracy"`
	ActiveFleets int    `json:"activeFleets"`
	OnTimeRate   string `json:"onTimeRate"`
}
