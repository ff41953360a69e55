package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("offer not found")

type Offer struct {
	ID            uuid.UUID
	Name          string
	ValueProps    []string
	IdealUseCases []string
	CreatedAt     time.Time
}

type CreateParams struct {
	Name          string
	ValueProps    []string
	IdealUseCases []string
}

const offerColumns = `id, name, value_prop, ideal_use_cases, created_at`

const createOfferQuery = `
	INSERT INTO offers (name, value_prop, ideal_use_cases)
	VALUES ($1, $2, $3)
	RETURNING ` + offerColumns

const getOfferByIDQuery = `
	SELECT ` + offerColumns + `
	FROM offers
	WHERE id = $1`

const listOffersQuery = `
	SELECT ` + offerColumns + `
	FROM offers
	ORDER BY created_at DESC, id`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, params CreateParams) (Offer, error) {
	row := r.pool.QueryRow(ctx, createOfferQuery, params.Name, params.ValueProps, params.IdealUseCases)
	return scanOffer(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Offer, error) {
	offer, err := scanOffer(r.pool.QueryRow(ctx, getOfferByIDQuery, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Offer{}, ErrNotFound
	}
	return offer, err
}

func (r *Repository) List(ctx context.Context) ([]Offer, error) {
	rows, err := r.pool.Query(ctx, listOffersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Offer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, offer)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return items, nil
}

func scanOffer(row pgx.Row) (Offer, error) {
	var o Offer
	err := row.Scan(&o.ID, &o.Name, &o.ValueProps, &o.IdealUseCases, &o.CreatedAt)
	return o, err
}
