package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// insertChunkSize bounds the number of statements queued per batch.
const insertChunkSize = 500

type Lead struct {
	ID          uuid.UUID
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedInBio string
	CreatedAt   time.Time
}

type NewLead struct {
	Name        string
	Role        string
	Company     string
	Industry    string
	Location    string
	LinkedInBio string
}

const insertLeadQuery = `
	INSERT INTO leads (name, role, company, industry, location, linkedin_bio)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT DO NOTHING`

const listLeadsQuery = `
	SELECT id, name, role, company, industry, location, linkedin_bio, created_at
	FROM leads
	ORDER BY seq`

const countLeadsQuery = `SELECT count(*) FROM leads`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertMany stores leads, skipping rows that collide with the dedup key,
// and returns how many were inserted.
func (r *Repository) InsertMany(ctx context.Context, leads []NewLead) (int, error) {
	inserted := 0
	for start := 0; start < len(leads); start += insertChunkSize {
		end := min(start+insertChunkSize, len(leads))
		n, err := r.insertChunk(ctx, leads[start:end])
		inserted += n
		if err != nil {
			return inserted, err
		}
	}
	return inserted, nil
}

func (r *Repository) insertChunk(ctx context.Context, leads []NewLead) (int, error) {
	batch := &pgx.Batch{}
	for _, l := range leads {
		batch.Queue(insertLeadQuery, l.Name, l.Role, l.Company, l.Industry, l.Location, l.LinkedInBio)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for i := 0; i < len(leads); i++ {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert lead %d: %w", i, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// List returns every lead in insertion order.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, listLeadsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Role, &l.Company, &l.Industry, &l.Location, &l.LinkedInBio, &l.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, countLeadsQuery).Scan(&n)
	return n, err
}
