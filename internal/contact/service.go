package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"omgagents.ai/web/internal/observability"
)

// Forwarder delivers an accepted submission to the outside world.
type Forwarder interface {
	Forward(ctx context.Context, msg Sanitized) error
}

// Service runs the gate and, when it passes, forwards the submission.
type Service struct {
	gate      Gate
	limiter   Limiter
	forwarder Forwarder
	now       func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the gate, limiter and forwarder.
func NewService(gate Gate, limiter Limiter, forwarder Forwarder, opts ...Option) *Service {
	if limiter == nil {
		limiter = NewMemoryLimiter(gate.rateWindow())
	}
	s := &Service{gate: gate, limiter: limiter, forwarder: forwarder, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Gate returns the configured gate.
func (s *Service) Gate() Gate { return s.gate }

// Now returns the service clock reading.
func (s *Service) Now() time.Time { return s.now() }

// Submit validates sub for the client identified by clientKey and forwards it.
// The attempt counts against the rate limit as soon as the gate passes, so a
// failed relay call cannot be retried inside the window.
func (s *Service) Submit(ctx context.Context, clientKey string, sub Submission, openedAt time.Time) (Receipt, error) {
	logger := observability.FromContext(ctx)
	now := s.now()

	if err := s.gate.ValidateAttachments(0, sub.Attachments); err != nil {
		logger.Info("contact submission rejected", zap.Error(err))
		return Receipt{}, err
	}

	last, err := s.limiter.Last(ctx, clientKey)
	if err != nil {
		// Lookup failures fail open.
		logger.Warn("contact limiter lookup failed", zap.Error(err))
	}

	clean, err := s.gate.Check(now, sub, Timing{OpenedAt: openedAt, LastSubmission: last})
	if err != nil {
		logger.Info("contact submission rejected", zap.Error(err))
		return Receipt{}, err
	}

	if err := s.limiter.Record(ctx, clientKey, now); err != nil {
		logger.Warn("contact limiter record failed", zap.Error(err))
	}

	if s.forwarder == nil {
		return Receipt{}, fmt.Errorf("contact: no forwarder configured")
	}
	if err := s.forwarder.Forward(ctx, clean); err != nil {
		return Receipt{}, fmt.Errorf("contact: forward: %w", err)
	}

	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	logger.Info("contact submission relayed",
		zap.String("receipt_id", id.String()),
		zap.Int("attachments", len(clean.Attachments)),
	)
	return Receipt{ID: id.String(), Submitted: now}, nil
}
