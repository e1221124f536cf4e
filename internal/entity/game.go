package entity

import (
	"time"

	"github.com/google/uuid"
)

// Game is a committed game row for data transfer between layers.
type Game struct {
	ID           uuid.UUID `json:"id"`
	SchoolID     uuid.UUID `json:"school_id"`
	Sport        string    `json:"sport"`
	Gender       string    `json:"gender"`
	Season       string    `json:"season"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time,omitempty"`
	Opponent     string    `json:"opponent"`
	OpponentCity string    `json:"opponent_city,omitempty"`
	IsHome       bool      `json:"is_home"`
	IsConference bool      `json:"is_conference"`
	Location     string    `json:"location,omitempty"`
	HomeScore    *int      `json:"home_score,omitempty"`
	AwayScore    *int      `json:"away_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
