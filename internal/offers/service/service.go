// Package service implements offer management.
package service

import (
	"context"
	"errors"
	"strings"

	"leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/offers/transport"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
)

// Repository is the storage the service needs.
type Repository interface {
	Create(ctx context.Context, params repository.CreateParams) (repository.Offer, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Offer, error)
	List(ctx context.Context) ([]repository.Offer, error)
}

type Service struct {
	repo Repository
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new offer. Input is assumed validated; entries are trimmed.
func (s *Service) Create(ctx context.Context, req transport.CreateOfferRequest) (transport.OfferResponse, error) {
	offer, err := s.repo.Create(ctx, repository.CreateParams{
		Name:          strings.TrimSpace(req.Name),
		ValueProps:    trimAll(req.ValueProps),
		IdealUseCases: trimAll(req.IdealUseCases),
	})
	if err != nil {
		return transport.OfferResponse{}, apperr.Wrap(apperr.KindInternal, "failed to create offer", err).WithOp("offers.Create")
	}
	return toResponse(offer), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.OfferResponse, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.OfferResponse{}, apperr.NotFound("offer not found")
		}
		return transport.OfferResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load offer", err).WithOp("offers.GetByID")
	}
	return toResponse(offer), nil
}

func (s *Service) List(ctx context.Context) (transport.ListOffersResponse, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return transport.ListOffersResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list offers", err).WithOp("offers.List")
	}
	items := make([]transport.OfferResponse, 0, len(offers))
	for _, o := range offers {
		items = append(items, toResponse(o))
	}
	return transport.ListOffersResponse{Items: items, Total: len(items)}, nil
}

func toResponse(o repository.Offer) transport.OfferResponse {
	return transport.OfferResponse{
		ID:            o.ID,
		Name:          o.Name,
		ValueProps:    o.ValueProps,
		IdealUseCases: o.IdealUseCases,
		CreatedAt:     o.CreatedAt,
	}
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
