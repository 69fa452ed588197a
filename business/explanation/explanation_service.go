package explanation

import (
	"context"
	"strings"
	"time"

	"mediSense/domain"
	"mediSense/pkg/logger"
	"mediSense/pkg/metrics"
)

// TextGenerator contract interface for the external model call. Implemented
// by the gemini repository; tests inject fakes.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// defaultTimeout bounds the external call when the config does not set one.
const defaultTimeout = 8 * time.Second

type Service struct {
	generator TextGenerator
	timeout   time.Duration
}

// NewService builds the generator with its branch already decided: pass a
// nil generator to pin the deterministic path (no credential configured).
func NewService(generator TextGenerator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		generator: generator,
		timeout:   timeout,
	}
}

// Generate produces the four-section markdown report. It never returns an
// error: any failure of the external path (timeout, network, empty body)
// is logged and masked by the deterministic template.
func (s *Service) Generate(ctx context.Context, input domain.ExplanationInput) string {
	if s.generator == nil {
		return FallbackReport(input)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(ctx, BuildPrompt(input))
	if err != nil {
		logger.Warn("external text generation failed, using deterministic report", err)
		metrics.ExplanationFallbackTotal.Inc()
		return FallbackReport(input)
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("external text generation returned an empty response, using deterministic report")
		metrics.ExplanationFallbackTotal.Inc()
		return FallbackReport(input)
	}

	return text
}
