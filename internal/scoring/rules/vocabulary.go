package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SynonymGroup maps a canonical industry key to related terms.
type SynonymGroup struct {
	Key   string   `yaml:"key"`
	Terms []string `yaml:"terms"`
}

// Vocabulary holds the term tables the rule scorer matches against.
// Treat a Vocabulary as read-only once handed to a Scorer.
type Vocabulary struct {
	DecisionMakerRoles []string       `yaml:"decision_maker_roles"`
	InfluencerRoles    []string       `yaml:"influencer_roles"`
	IndustrySynonyms   []SynonymGroup `yaml:"industry_synonyms"`
}

// DefaultVocabulary returns the built-in tables. The spellings "recruitement"
// and "finamce" are kept as shipped; a vocabulary file can correct them.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		DecisionMakerRoles: []string{
			"founder", "cofounder", "ceo", "chief", "head",
			"director", "vp", "vice president", "owner",
		},
		InfluencerRoles: []string{
			"manager", "lead", "specialist", "consultant", "executive", "supervisor",
		},
		IndustrySynonyms: []SynonymGroup{
			{Key: "saas", Terms: []string{"software", "cloud", "programming", "platform"}},
			{Key: "hrtech", Terms: []string{"hr", "human resources", "recruitement"}},
			{Key: "fintech", Terms: []string{"finamce", "banking", "payments"}},
		},
	}
}

// LoadVocabulary reads a YAML vocabulary file. Sections missing from the
// file keep their built-in defaults.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes YAML vocabulary data over the defaults.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var file Vocabulary
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}

	v := DefaultVocabulary()
	if len(file.DecisionMakerRoles) > 0 {
		v.DecisionMakerRoles = file.DecisionMakerRoles
	}
	if len(file.InfluencerRoles) > 0 {
		v.InfluencerRoles = file.InfluencerRoles
	}
	if len(file.IndustrySynonyms) > 0 {
		v.IndustrySynonyms = file.IndustrySynonyms
	}
	return v.normalized()
}

func (v Vocabulary) normalized() (Vocabulary, error) {
	out := Vocabulary{
		DecisionMakerRoles: normalizeTerms(v.DecisionMakerRoles),
		InfluencerRoles:    normalizeTerms(v.InfluencerRoles),
		IndustrySynonyms:   make([]SynonymGroup, 0, len(v.IndustrySynonyms)),
	}
	for _, group := range v.IndustrySynonyms {
		key := Normalize(group.Key)
		if key == "" {
			return Vocabulary{}, fmt.Errorf("industry synonym group with empty key")
		}
		out.IndustrySynonyms = append(out.IndustrySynonyms, SynonymGroup{
			Key:   key,
			Terms: normalizeTerms(group.Terms),
		})
	}
	if len(out.DecisionMakerRoles) == 0 || len(out.InfluencerRoles) == 0 {
		return Vocabulary{}, fmt.Errorf("role vocabularies must not be empty")
	}
	return out, nil
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if n := Normalize(term); n != "" {
			out = append(out, n)
		}
	}
	return out
}
