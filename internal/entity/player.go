package entity

import (
	"time"

	"github.com/google/uuid"
)

// Player is a committed roster entry for data transfer between layers.
type Player struct {
	ID           uuid.UUID `json:"id"`
	SchoolID     uuid.UUID `json:"school_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	JerseyNumber string    `json:"jersey_number,omitempty"`
	Position     string    `json:"position,omitempty"`
	Grade        *string   `json:"grade,omitempty"`
	HeightFeet   *int      `json:"height_feet,omitempty"`
	HeightInches *int      `json:"height_inches,omitempty"`
	Weight       *int      `json:"weight,omitempty"`
	Sport        string    `json:"sport"`
	Gender       string    `json:"gender"`
	Season       string    `json:"season"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
