package entity

import (
	"time"

	"github.com/google/uuid"
)

// School is the canonical school identity for data transfer between layers.
type School struct {
	ID             uuid.UUID `json:"id"`
	Key            string    `json:"key"` // unique URL-safe slug
	Name           string    `json:"name"`
	City           string    `json:"city,omitempty"`
	Classification string    `json:"classification,omitempty"`
	Conference     string    `json:"conference,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SchoolAlias is a recorded alternate spelling that resolves to one school.
type SchoolAlias struct {
	ID       uuid.UUID `json:"id"`
	SchoolID uuid.UUID `json:"school_id"`
	Alias    string    `json:"alias"`
}
