// Package service orchestrates scoring: rules, intent classification and
// idempotent persistence for every lead against one offer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadscore_backend/internal/scoring/domain"
	"leadscore_backend/internal/scoring/intent"
	"leadscore_backend/internal/scoring/ports"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/rules"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

// Run results reported to the observer.
const (
	RunCompleted  = "completed"
	RunOverloaded = "overloaded"
	RunCancelled  = "cancelled"
)

// ScoreStore is the score persistence the orchestrator needs.
type ScoreStore interface {
	Exists(ctx context.Context, leadID, offerID uuid.UUID) (bool, error)
	InsertIfAbsent(ctx context.Context, s repository.NewScore) (bool, error)
	ListResultsByOffer(ctx context.Context, offerID uuid.UUID) ([]repository.Result, error)
}

// RunObserver records run totals. Optional.
type RunObserver interface {
	ObserveScoringRun(result string, created, skipped, failed int)
}

// Failure is one lead that could not be scored.
type Failure struct {
	LeadID uuid.UUID `json:"leadId"`
	Error  string    `json:"error"`
}

// Report summarizes one run over all leads for an offer.
type Report struct {
	OfferID uuid.UUID `json:"offerId"`
	Total   int       `json:"total"`
	Created int       `json:"created"`
	Skipped int       `json:"skipped"`
	Failed  []Failure `json:"failed"`
}

// OverloadDetails is attached to the Unavailable error when the provider
// stops a run.
type OverloadDetails struct {
	Provider string `json:"provider"`
	Report   Report `json:"report"`
}

type Service struct {
	offers     ports.OfferReader
	leads      ports.LeadReader
	scores     ScoreStore
	rules      *rules.Scorer
	classifier intent.Classifier
	observer   RunObserver
	log        *logger.Logger
	now        func() time.Time
}

func New(offers ports.OfferReader, leads ports.LeadReader, scores ScoreStore, scorer *rules.Scorer, classifier intent.Classifier, observer RunObserver, log *logger.Logger) *Service {
	if scorer == nil {
		scorer = rules.Default()
	}
	return &Service{
		offers:     offers,
		leads:      leads,
		scores:     scores,
		rules:      scorer,
		classifier: classifier,
		observer:   observer,
		log:        log,
		now:        time.Now,
	}
}

// ScoreLeadsForOffer scores every lead that has no score for offerID yet.
// Leads are processed one at a time in storage order. A failing lead is
// recorded in the report and the run continues, except when the provider
// is overloaded: then the run stops and the partial report is returned
// together with an Unavailable error.
func (s *Service) ScoreLeadsForOffer(ctx context.Context, offerID uuid.UUID) (Report, error) {
	const op = "scoring.ScoreLeadsForOffer"
	report := Report{OfferID: offerID, Failed: []Failure{}}

	offer, err := s.loadOffer(ctx, offerID, op)
	if err != nil {
		return report, err
	}

	leads, err := s.leads.ListLeads(ctx)
	if err != nil {
		return report, apperr.Wrap(apperr.KindInternal, "failed to load leads", err).WithOp(op)
	}
	if len(leads) == 0 {
		return report, apperr.NotFound("no leads to score").WithOp(op)
	}
	report.Total = len(leads)

	ctx = context.WithValue(ctx, logger.OfferIDKey, offerID.String())
	log := s.log.WithContext(ctx)
	start := s.now()

	for _, lead := range leads {
		if err := ctx.Err(); err != nil {
			s.finish(log, RunCancelled, report, start)
			return report, err
		}

		outcome, err := s.scoreLead(ctx, offer, lead)
		switch {
		case err == nil:
			if outcome == outcomeCreated {
				report.Created++
			} else {
				report.Skipped++
			}
		case errors.Is(err, intent.ErrOverloaded):
			s.finish(log, RunOverloaded, report, start)
			return report, overloadError(err, report).WithOp(op)
		case ctx.Err() != nil:
			s.finish(log, RunCancelled, report, start)
			return report, ctx.Err()
		default:
			log.Warn("lead scoring failed", "lead_id", lead.ID.String(), "error", err)
			report.Failed = append(report.Failed, Failure{LeadID: lead.ID, Error: err.Error()})
		}
	}

	s.finish(log, RunCompleted, report, start)
	return report, nil
}

// ScoreAllOffers runs ScoreLeadsForOffer for every stored offer and stops
// at the first error.
func (s *Service) ScoreAllOffers(ctx context.Context) ([]Report, error) {
	ids, err := s.offers.ListOfferIDs(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list offers", err).WithOp("scoring.ScoreAllOffers")
	}
	reports := make([]Report, 0, len(ids))
	for _, id := range ids {
		report, err := s.ScoreLeadsForOffer(ctx, id)
		reports = append(reports, report)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

type leadOutcome int

const (
	outcomeCreated leadOutcome = iota
	outcomeSkipped
)

func (s *Service) scoreLead(ctx context.Context, offer domain.Offer, lead domain.Lead) (leadOutcome, error) {
	exists, err := s.scores.Exists(ctx, lead.ID, offer.ID)
	if err != nil {
		return 0, fmt.Errorf("check existing score: %w", err)
	}
	if exists {
		return outcomeSkipped, nil
	}

	breakdown := s.rules.Score(lead, offer)

	verdict, err := s.classifier.Classify(ctx, offer, lead)
	if err != nil {
		return 0, err
	}

	inserted, err := s.scores.InsertIfAbsent(ctx, repository.NewScore{
		LeadID:                lead.ID,
		OfferID:               offer.ID,
		RoleScore:             breakdown.Role,
		IndustryScore:         breakdown.Industry,
		DataCompletenessScore: breakdown.Completeness,
		RuleScore:             breakdown.Total,
		AIScore:               verdict.Score,
		Intent:                string(verdict.Intent),
		Reasoning:             verdict.Reasoning,
	})
	if err != nil {
		return 0, fmt.Errorf("store score: %w", err)
	}
	if !inserted {
		return outcomeSkipped, nil
	}
	return outcomeCreated, nil
}

func (s *Service) loadOffer(ctx context.Context, offerID uuid.UUID, op string) (domain.Offer, error) {
	offer, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, ports.ErrOfferNotFound) {
			return domain.Offer{}, apperr.NotFound("offer not found").WithOp(op)
		}
		return domain.Offer{}, apperr.Wrap(apperr.KindInternal, "failed to load offer", err).WithOp(op)
	}
	return offer, nil
}

func (s *Service) finish(log *logger.Logger, result string, report Report, start time.Time) {
	log.ScoringRun(report.OfferID.String(), report.Total, report.Created, report.Skipped, len(report.Failed), s.now().Sub(start))
	if s.observer != nil {
		s.observer.ObserveScoringRun(result, report.Created, report.Skipped, len(report.Failed))
	}
}

func overloadError(err error, report Report) *apperr.Error {
	provider := ""
	var overload *intent.OverloadError
	if errors.As(err, &overload) {
		provider = overload.Provider
	}
	return apperr.Wrap(apperr.KindUnavailable, "AI provider is overloaded, try again later", err).
		WithDetails(OverloadDetails{Provider: provider, Report: report})
}
