package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fertcost/internal/llm"
	"fertcost/internal/logging"
)

// Service is the report-generation entry point. Every invocation is a
// single blocking round trip with no shared mutable state; concurrent
// use is safe as long as the client factory is.
type Service struct {
	factory    llm.Factory
	generation llm.Options
	timeout    time.Duration
	now        func() time.Time
}

// NewService creates a report service. The factory is invoked once per
// call, so configuration problems (missing credentials) surface at
// request time, before any network attempt. A zero timeout disables
// the round-trip bound.
func NewService(factory llm.Factory, generation llm.Options, timeout time.Duration) *Service {
	return &Service{
		factory:    factory,
		generation: generation,
		timeout:    timeout,
		now:        time.Now,
	}
}

// WithClock overrides the assembly-time clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Generate turns inputs, predictions, and confidences into a
// recommendation report. It never returns an error: service and
// configuration failures become {"error": ...} reports, unparseable
// model output becomes {"raw": ...}, and every shape carries _meta.
func (s *Service) Generate(ctx context.Context, inputs, predictions map[string]any, confidences map[string]float64) map[string]any {
	req := BuildRequest(inputs, predictions, confidences)
	data := s.generate(ctx, req)
	return Assemble(data, inputs, predictions, confidences, s.now())
}

func (s *Service) generate(ctx context.Context, req Request) map[string]any {
	client, err := s.factory(ctx)
	if err != nil {
		logging.Warn("report client unavailable", zap.Error(err))
		return errorResult(err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := client.GenerateText(ctx, req.Prompt(), s.generation)
	if err != nil {
		logging.Warn("report generation failed", zap.String("client", client.Name()), zap.Error(err))
		return errorResult(err)
	}

	parsed, outcome := ParseResponse(raw)
	if outcome != ParsedDirect {
		logging.Debug("model response needed recovery",
			zap.String("outcome", outcome.String()),
			zap.Int("raw_bytes", len(raw)))
	}
	return parsed
}

// errorResult synthesizes the error-shaped report. Both configuration
// and runtime service failures resolve to this one contract at the
// pipeline boundary.
func errorResult(err error) map[string]any {
	return map[string]any{
		"error": "failed to generate recommendation: " + err.Error(),
	}
}
