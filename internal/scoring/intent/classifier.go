// Package intent classifies a lead's buying intent for an offer with an
// external language model and maps the label to points.
package intent

import (
	"context"
	"errors"
	"fmt"

	"leadscore_backend/internal/scoring/domain"
)

// Points per intent band. Unknown labels fall back to the lowest band.
const (
	PointsHigh   = 50
	PointsMedium = 30
	PointsLow    = 10
)

// Classification is the parsed model verdict for one lead.
type Classification struct {
	Intent    domain.Intent
	Reasoning string
	Score     int
}

// Classifier produces a Classification for a lead against an offer.
type Classifier interface {
	Classify(ctx context.Context, offer domain.Offer, lead domain.Lead) (Classification, error)
}

// ErrOverloaded is matched by errors.Is when the provider reports that it is
// overloaded or out of quota.
var ErrOverloaded = errors.New("ai provider overloaded")

// OverloadError carries the provider that rejected the call.
type OverloadError struct {
	Provider string
	Err      error
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, ErrOverloaded)
}

func (e *OverloadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrOverloaded) succeed.
func (e *OverloadError) Is(target error) bool { return target == ErrOverloaded }

// ResponseError reports an absent or malformed model payload.
type ResponseError struct {
	Provider string
	Reason   string
	Raw      string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s returned an unusable response: %s", e.Provider, e.Reason)
}

// ScoreForIntent maps a label to points. Unknown labels score as LOW.
func ScoreForIntent(intent domain.Intent) int {
	switch intent {
	case domain.IntentHigh:
		return PointsHigh
	case domain.IntentMedium:
		return PointsMedium
	default:
		return PointsLow
	}
}
