package transport

import (
	"time"

	"github.com/google/uuid"
)

// UploadLeadsResponse is returned by POST /leads/upload.
type UploadLeadsResponse struct {
	Message   string `json:"message"`
	LeadCount int    `json:"leadCount"`
	Inserted  int    `json:"inserted"`
	Skipped   int    `json:"skipped"`
	ArchiveID string `json:"archiveKey,omitempty"`
}

// LeadResponse is the public shape of a lead.
type LeadResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	LinkedInBio string    `json:"linkedIn_bio"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListLeadsResponse is returned by GET /leads.
type ListLeadsResponse struct {
	Items []LeadResponse `json:"items"`
	Total int            `json:"total"`
}
