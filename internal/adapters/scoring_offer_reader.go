package adapters

import (
	"context"
	"errors"
	"fmt"

	offersrepo "leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/internal/scoring/ports"

	"github.com/google/uuid"
)

// OfferStore is the narrow slice of the offers repository scoring needs.
type OfferStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (offersrepo.Offer, error)
	List(ctx context.Context) ([]offersrepo.Offer, error)
}

// ScoringOfferReader adapts the offers repository to scoring's OfferReader.
type ScoringOfferReader struct {
	offers OfferStore
}

// NewScoringOfferReader creates a new offer reader adapter.
func NewScoringOfferReader(offers OfferStore) *ScoringOfferReader {
	return &ScoringOfferReader{offers: offers}
}

// GetOffer maps an offer row to the scoring domain.
func (a *ScoringOfferReader) GetOffer(ctx context.Context, id uuid.UUID) (domain.Offer, error) {
	o, err := a.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offersrepo.ErrNotFound) {
			return domain.Offer{}, ports.ErrOfferNotFound
		}
		return domain.Offer{}, fmt.Errorf("look up offer for scoring: %w", err)
	}
	return domain.Offer{
		ID:            o.ID,
		Name:          o.Name,
		ValueProps:    o.ValueProps,
		IdealUseCases: o.IdealUseCases,
	}, nil
}

// ListOfferIDs returns the ids of every stored offer.
func (a *ScoringOfferReader) ListOfferIDs(ctx context.Context) ([]uuid.UUID, error) {
	offers, err := a.offers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list offers for scoring: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

var _ ports.OfferReader = (*ScoringOfferReader)(nil)
