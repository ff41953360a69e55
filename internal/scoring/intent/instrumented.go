package intent

import (
	"context"
	"errors"
	"time"

	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/metrics"
)

// CallObserver receives one observation per classification call.
type CallObserver interface {
	ObserveAICall(provider, outcome string, elapsed time.Duration)
}

// Instrumented decorates a Classifier with logging, metrics and an
// optional per-call timeout.
type Instrumented struct {
	next     Classifier
	provider string
	observer CallObserver
	log      *logger.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewInstrumented wraps next. A nil observer disables metrics and a zero
// timeout leaves the caller's deadline in charge.
func NewInstrumented(next Classifier, provider string, observer CallObserver, log *logger.Logger, timeout time.Duration) *Instrumented {
	return &Instrumented{
		next:     next,
		provider: provider,
		observer: observer,
		log:      log,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Classify implements Classifier.
func (i *Instrumented) Classify(ctx context.Context, offer domain.Offer, lead domain.Lead) (Classification, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	start := i.now()
	result, err := i.next.Classify(ctx, offer, lead)
	elapsed := i.now().Sub(start)

	outcome := outcomeFor(err)
	if i.observer != nil {
		i.observer.ObserveAICall(i.provider, outcome, elapsed)
	}
	if i.log != nil {
		i.log.WithContext(ctx).AICall(i.provider, lead.ID.String(), outcome, elapsed)
	}
	return result, err
}

func outcomeFor(err error) string {
	var respErr *ResponseError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrOverloaded):
		return metrics.OutcomeOverloaded
	case errors.As(err, &respErr):
		return metrics.OutcomeBadPayload
	default:
		return metrics.OutcomeError
	}
}
