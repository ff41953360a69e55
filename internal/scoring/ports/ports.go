// Package ports defines what the scoring context reads from other contexts.
package ports

import (
	"context"
	"errors"

	"leadscore_backend/internal/scoring/domain"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned by OfferReader for unknown ids.
var ErrOfferNotFound = errors.New("offer not found")

// OfferReader loads offers owned by the offers context.
type OfferReader interface {
	GetOffer(ctx context.Context, id uuid.UUID) (domain.Offer, error)
	ListOfferIDs(ctx context.Context) ([]uuid.UUID, error)
}

// LeadReader lists leads owned by the leads context in storage order.
type LeadReader interface {
	ListLeads(ctx context.Context) ([]domain.Lead, error)
}
