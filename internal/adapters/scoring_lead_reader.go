package adapters

import (
	"context"
	"fmt"

	leadsrepo "leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/internal/scoring/ports"
)

// LeadStore is the narrow slice of the leads repository scoring needs.
type LeadStore interface {
	List(ctx context.Context) ([]leadsrepo.Lead, error)
}

// ScoringLeadReader adapts the leads repository to scoring's LeadReader.
type ScoringLeadReader struct {
	leads LeadStore
}

// NewScoringLeadReader creates a new lead reader adapter.
func NewScoringLeadReader(leads LeadStore) *ScoringLeadReader {
	return &ScoringLeadReader{leads: leads}
}

// ListLeads returns all leads in storage order.
func (a *ScoringLeadReader) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	rows, err := a.leads.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leads for scoring: %w", err)
	}
	leads := make([]domain.Lead, 0, len(rows))
	for _, l := range rows {
		leads = append(leads, domain.Lead{
			ID:          l.ID,
			Name:        l.Name,
			Role:        l.Role,
			Company:     l.Company,
			Industry:    l.Industry,
			Location:    l.Location,
			LinkedInBio: l.LinkedInBio,
		})
	}
	return leads, nil
}

var _ ports.LeadReader = (*ScoringLeadReader)(nil)
