// Package repository persists scores. Scores are only ever inserted.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewScore is one computed score ready to persist.
type NewScore struct {
	LeadID                uuid.UUID
	OfferID               uuid.UUID
	RoleScore             int
	IndustryScore         int
	DataCompletenessScore int
	RuleScore             int
	AIScore               int
	Intent                string
	Reasoning             string
}

// Result is a stored score joined with its lead.
type Result struct {
	LeadID                uuid.UUID
	Name                  string
	Role                  string
	Company               string
	Industry              string
	RoleScore             int
	IndustryScore         int
	DataCompletenessScore int
	RuleScore             int
	AIScore               int
	Intent                string
	Reasoning             string
	CreatedAt             time.Time
}

// Total is rule score plus AI score.
func (r Result) Total() int {
	return r.RuleScore + r.AIScore
}

const scoreExistsQuery = `
	SELECT EXISTS (
		SELECT 1 FROM scores WHERE lead_id = $1 AND offer_id = $2
	)`

const insertScoreIfAbsentQuery = `
	INSERT INTO scores (
		lead_id, offer_id, role_score, industry_score, data_completeness_score,
		rule_score, ai_score, intent, reasoning
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (lead_id, offer_id) DO NOTHING`

const listResultsByOfferQuery = `
	SELECT s.lead_id, l.name, l.role, l.company, l.industry,
		s.role_score, s.industry_score, s.data_completeness_score,
		s.rule_score, s.ai_score, s.intent, s.reasoning, s.created_at
	FROM scores s
	JOIN leads l ON l.id = s.lead_id
	WHERE s.offer_id = $1
	ORDER BY s.seq`

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Exists reports whether a score is already stored for the pair.
func (r *Repository) Exists(ctx context.Context, leadID, offerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, scoreExistsQuery, leadID, offerID).Scan(&exists)
	return exists, err
}

// InsertIfAbsent stores s unless a score for the same pair exists. It
// reports whether a row was written.
func (r *Repository) InsertIfAbsent(ctx context.Context, s NewScore) (bool, error) {
	tag, err := r.pool.Exec(ctx, insertScoreIfAbsentQuery,
		s.LeadID, s.OfferID, s.RoleScore, s.IndustryScore, s.DataCompletenessScore,
		s.RuleScore, s.AIScore, s.Intent, s.Reasoning,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListResultsByOffer returns every score for offerID in creation order.
func (r *Repository) ListResultsByOffer(ctx context.Context, offerID uuid.UUID) ([]Result, error) {
	rows, err := r.pool.Query(ctx, listResultsByOfferQuery, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Result, 0)
	for rows.Next() {
		var res Result
		if err := rows.Scan(
			&res.LeadID, &res.Name, &res.Role, &res.Company, &res.Industry,
			&res.RoleScore, &res.IndustryScore, &res.DataCompletenessScore,
			&res.RuleScore, &res.AIScore, &res.Intent, &res.Reasoning, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return items, nil
}
