package transport

import (
	"leadscore_backend/internal/scoring/service"

	"github.com/google/uuid"
)

// ScoreResponse is returned by POST /score/:offerId.
type ScoreResponse struct {
	Message string    `json:"message"`
	OfferID uuid.UUID `json:"offerId"`
	// ScoreCount is the number of leads considered in the run, as Total.
	ScoreCount int               `json:"scoreCount"`
	Total      int               `json:"total"`
	Created    int               `json:"created"`
	Skipped    int               `json:"skipped"`
	Failed     []service.Failure `json:"failed"`
}

// OverloadResponse is returned with 503 when the AI provider stops a run.
type OverloadResponse struct {
	Error    string         `json:"error"`
	Provider string         `json:"provider"`
	Details  service.Report `json:"details"`
}

// ResultsResponse is returned by GET /results/:offerId.
type ResultsResponse struct {
	Message        string              `json:"message"`
	FormattedScore []service.ResultRow `json:"formattedScore"`
}

// NewScoreResponse maps a run report to the API shape.
func NewScoreResponse(r service.Report) ScoreResponse {
	return ScoreResponse{
		Message:    "leads scored",
		OfferID:    r.OfferID,
		ScoreCount: r.Total,
		Total:      r.Total,
		Created:    r.Created,
		Skipped:    r.Skipped,
		Failed:     r.Failed,
	}
}
