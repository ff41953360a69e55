// Package rules implements the deterministic half of lead scoring: role
// seniority, industry fit against an offer and profile completeness.
package rules

import (
	"strings"

	"leadscore_backend/internal/scoring/domain"
)

// Points awarded by each rule.
const (
	PointsDecisionMaker    = 20
	PointsInfluencer       = 10
	PointsDirectIndustry   = 20
	PointsAdjacentIndustry = 10
	PointsComplete         = 10

	MaxRuleScore = PointsDecisionMaker + PointsDirectIndustry + PointsComplete
)

// Breakdown is the per-rule result for one lead against one offer.
type Breakdown struct {
	Role         int `json:"role_score"`
	Industry     int `json:"industry_score"`
	Completeness int `json:"data_completeness_score"`
	Total        int `json:"rule_score"`
}

// Scorer applies the rules with a fixed vocabulary.
type Scorer struct {
	vocab Vocabulary
}

// New returns a Scorer for vocab. Terms are expected in normalized form,
// which LoadVocabulary and DefaultVocabulary both guarantee.
func New(vocab Vocabulary) *Scorer {
	return &Scorer{vocab: vocab}
}

var defaultScorer = New(DefaultVocabulary())

// Default returns the Scorer backed by the built-in vocabulary.
func Default() *Scorer {
	return defaultScorer
}

// RoleScore returns 20 for decision makers, 10 for influencers and 0 otherwise.
func (s *Scorer) RoleScore(role string) int {
	normalized := Normalize(role)
	if normalized == "" {
		return 0
	}
	if containsAny(normalized, s.vocab.DecisionMakerRoles) {
		return PointsDecisionMaker
	}
	if containsAny(normalized, s.vocab.InfluencerRoles) {
		return PointsInfluencer
	}
	return 0
}

// IndustryScore compares the lead industry to every offer target first and
// only then falls back to the synonym table.
func (s *Scorer) IndustryScore(leadIndustry string, offerTargets []string) int {
	industry := Normalize(leadIndustry)
	if industry == "" {
		return 0
	}

	for _, target := range offerTargets {
		if directMatch(industry, Normalize(target)) {
			return PointsDirectIndustry
		}
	}

	for _, group := range s.vocab.IndustrySynonyms {
		if strings.Contains(industry, group.Key) || containsAny(industry, group.Terms) {
			return PointsAdjacentIndustry
		}
	}
	return 0
}

func directMatch(industry, target string) bool {
	if target == "" {
		return false
	}
	return strings.Contains(industry, target) || containsPhrase(target, industry)
}

// DataCompletenessScore returns 10 only when all six text fields are non-blank.
func (s *Scorer) DataCompletenessScore(lead domain.Lead) int {
	fields := [...]string{
		lead.Name, lead.Role, lead.Company,
		lead.Industry, lead.Location, lead.LinkedInBio,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return 0
		}
	}
	return PointsComplete
}

// Score runs every rule for lead against offer.
func (s *Scorer) Score(lead domain.Lead, offer domain.Offer) Breakdown {
	b := Breakdown{
		Role:         s.RoleScore(lead.Role),
		Industry:     s.IndustryScore(lead.Industry, offer.IdealUseCases),
		Completeness: s.DataCompletenessScore(lead),
	}
	b.Total = b.Role + b.Industry + b.Completeness
	return b
}

// RoleScore scores role with the built-in vocabulary.
func RoleScore(role string) int { return defaultScorer.RoleScore(role) }

// IndustryScore scores leadIndustry with the built-in vocabulary.
func IndustryScore(leadIndustry string, offerTargets []string) int {
	return defaultScorer.IndustryScore(leadIndustry, offerTargets)
}

// DataCompletenessScore scores lead completeness.
func DataCompletenessScore(lead domain.Lead) int { return defaultScorer.DataCompletenessScore(lead) }

// RuleScore returns the full breakdown with the built-in vocabulary.
func RuleScore(lead domain.Lead, offer domain.Offer) Breakdown {
	return defaultScorer.Score(lead, offer)
}
