package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateOfferRequest is the body of POST /offer.
type CreateOfferRequest struct {
	Name          string   `json:"name" validate:"required,notblank,max=200"`
	ValueProps    []string `json:"value_props" validate:"required,min=1,dive,required,notblank"`
	IdealUseCases []string `json:"ideal_use_cases" validate:"required,min=1,dive,required,notblank"`
}

// OfferResponse is the public shape of an offer.
type OfferResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ValueProps    []string  `json:"value_props"`
	IdealUseCases []string  `json:"ideal_use_cases"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateOfferResponse wraps the created offer.
type CreateOfferResponse struct {
	Message string        `json:"message"`
	Offer   OfferResponse `json:"offer"`
}

// ListOffersResponse is returned by GET /offers.
type ListOffersResponse struct {
	Items []OfferResponse `json:"items"`
	Total int             `json:"total"`
}
