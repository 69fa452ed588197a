package telemetry

import (
	"fmt"
	"math/rand"
	"sync"

	"mediSense/domain"
)

// Source yields uniform values in [0,1). Production wires a seeded
// math/rand source; tests inject a fixed sequence so generated snapshots
// are reproducible.
type Source interface {
	Float64() float64
}

// NewRandSource returns a seeded pseudo-random source.
func NewRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type Service struct {
	mu  sync.Mutex
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Status generates one simulated telemetry snapshot. Every numeric factor
// stays inside [0,1]; display fields are formatted here and passed through
// untouched by the scoring engine.
func (s *Service) Status() domain.LogisticsStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.LogisticsStatus{
		RiskInputs: domain.RiskInputs{
			TrafficRisk:         0.25 + s.src.Float64()*0.6,
			WeatherRisk:         s.src.Float64() * 0.7,
			HistoricalDelayRate: 0.1 + s.src.Float64()*0.25,
			IncidentDensity:     s.src.Float64() * 0.4,
		},
		PriorityInputs: domain.PriorityInputs{
			EmergencyLevel:       0.4 + s.src.Float64()*0.6,
			TimeSensitivity:      0.3 + s.src.Float64()*0.7,
			CriticalSupplyFactor: 0.2 + s.src.Float64()*0.8,
		},
		ModelVersion: "v2.4.1",
		Accuracy:     fmt.Sprintf("%.1f%%", 92.5+s.src.Float64()*5),
		ActiveFleets: 10 + int(s.src.Float64()*8),
		OnTimeRate:   fmt.Sprintf("%.1f%%", 90+s.src.Float64()*8),
	}
}
