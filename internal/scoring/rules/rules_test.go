package rules

import (
	"testing"

	"leadscore_backend/internal/scoring/domain"
)

func completeLead() domain.Lead {
	return domain.Lead{
		Name:        "Ava Patel",
		Role:        "Head of Growth",
		Company:     "FlowMetrics",
		Industry:    "SaaS",
		Location:    "India",
		LinkedInBio: "B2B SaaS growth expert with 10+ years in marketing",
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"   ":              "",
		"  Head of Sales ": "head of sales",
		"CEO":              "ceo",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoleScore(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"Head of Growth", 20},
		{"  CEO ", 20},
		{"Co-Founder", 20},
		{"VP Engineering", 20},
		{"Vice President, Sales", 20},
		{"Engineering Manager", 10},
		{"Team Lead", 10},
		{"Marketing Consultant", 10},
		{"Director and Manager", 20},
		{"Software Engineer", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := RoleScore(tt.role); got != tt.want {
			t.Fatalf("RoleScore(%q) = %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestIndustryScoreDirect(t *testing.T) {
	tests := []struct {
		industry string
		targets  []string
		want     int
	}{
		{"SaaS", []string{"B2B SaaS mid-market"}, 20},
		{"B2B SaaS", []string{"saas"}, 20},
		{"Healthcare", []string{"Retail", "healthcare providers"}, 20},
		{"Cloud Software", []string{"Retail"}, 10},
		{"Banking", []string{"Retail"}, 10},
		{"HR", []string{"Retail"}, 10},
		{"Financial Technology", []string{"Retail"}, 0},
		{"Agriculture", []string{"Retail"}, 0},
		{"", []string{"Retail"}, 0},
		{"Retail", []string{""}, 0},
		{"Retail", nil, 0},
	}
	for _, tt := range tests {
		if got := IndustryScore(tt.industry, tt.targets); got != tt.want {
			t.Fatalf("IndustryScore(%q, %v) = %d, want %d", tt.industry, tt.targets, got, tt.want)
		}
	}
}

func TestIndustryScoreDirectTakesPriorityOverSynonym(t *testing.T) {
	// "software" is a saas synonym, but the second target matches directly.
	got := IndustryScore("Software", []string{"Retail", "software vendors"})
	if got != PointsDirectIndustry {
		t.Fatalf("expected direct match, got %d", got)
	}
}

func TestIndustryScorePartialWordIsNotDirect(t *testing.T) {
	// "saa" is not a whole word of the target and contains no target.
	if got := IndustryScore("saa", []string{"B2B SaaS"}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestDataCompletenessScore(t *testing.T) {
	lead := completeLead()
	if got := DataCompletenessScore(lead); got != 10 {
		t.Fatalf("expected 10 for complete lead, got %d", got)
	}

	lead.Location = "   "
	if got := DataCompletenessScore(lead); got != 0 {
		t.Fatalf("expected 0 when a field is blank, got %d", got)
	}

	if got := DataCompletenessScore(domain.Lead{}); got != 0 {
		t.Fatalf("expected 0 for empty lead, got %d", got)
	}
}

func TestRuleScoreExample(t *testing.T) {
	offer := domain.Offer{
		Name:          "AI Outreach Automation",
		ValueProps:    []string{"24/7 outreach", "6x more meetings"},
		IdealUseCases: []string{"B2B SaaS mid-market"},
	}

	got := RuleScore(completeLead(), offer)
	want := Breakdown{Role: 20, Industry: 20, Completeness: 10, Total: 50}
	if got != want {
		t.Fatalf("RuleScore = %+v, want %+v", got, want)
	}
}

func TestRuleScoreTotalIsSum(t *testing.T) {
	offer := domain.Offer{IdealUseCases: []string{"Retail"}}
	leads := []domain.Lead{
		{Role: "Intern", Industry: "Payments"},
		{Role: "Manager", Industry: "retail chains", Name: "x"},
		completeLead(),
	}
	for _, lead := range leads {
		b := RuleScore(lead, offer)
		if b.Total != b.Role+b.Industry+b.Completeness {
			t.Fatalf("total %d != sum of %+v", b.Total, b)
		}
		if b.Total < 0 || b.Total > MaxRuleScore {
			t.Fatalf("total %d out of range", b.Total)
		}
	}
}

func TestCustomVocabulary(t *testing.T) {
	vocab, err := ParseVocabulary([]byte(`
industry_synonyms:
  - key: Fintech
    terms: [" Finance ", banking]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := New(vocab)

	if got := s.IndustryScore("Financial Technology", nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := s.IndustryScore("Consumer Finance", nil); got != 10 {
		t.Fatalf("expected 10 with corrected synonym, got %d", got)
	}
	if got := s.RoleScore("Founder"); got != 20 {
		t.Fatalf("default roles should be kept, got %d", got)
	}
}

func TestParseVocabularyRejectsEmptyKey(t *testing.T) {
	_, err := ParseVocabulary([]byte("industry_synonyms:\n  - key: \"\"\n    terms: [a]\n"))
	if err == nil {
		t.Fatal("expected error for empty synonym key")
	}
}

func TestParseVocabularyRejectsBadYAML(t *testing.T) {
	if _, err := ParseVocabulary([]byte("decision_maker_roles: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}
