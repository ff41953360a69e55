// Package domain holds the value types the scoring pipeline works on.
package domain

import "github.com/google/uuid"

// Offer is the product being pitched. Scoring reads it, never writes it.
type Offer struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ValueProps    []string  `json:"value_props"`
	IdealUseCases []string  `json:"ideal_use_cases"`
}

// Lead is a prospective contact. Every text field may be empty.
type Lead struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	LinkedInBio string    `json:"linkedIn_bio"`
}

// Intent is the buying intent band assigned by the classifier.
type Intent string

const (
	IntentHigh   Intent = "HIGH"
	IntentMedium Intent = "MEDIUM"
	IntentLow    Intent = "LOW"
)

// Valid reports whether i is one of the three known bands.
func (i Intent) Valid() bool {
	switch i {
	case IntentHigh, IntentMedium, IntentLow:
		return true
	}
	return false
}
