package extraction

import (
	"strings"

	"github.com/prepsportshq/preps-extract/constants"
)

// BuildScorebookPrompt composes the instruction for a scorebook photo. The
// model is told to return only JSON matching the scorebook schema.
func BuildScorebookPrompt() string {
	parts := []string{
		"You are reading a handwritten high-school basketball scorebook page.",
		"Return ONLY JSON that matches the provided JSON Schema. No commentary, no markdown.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Read every player row: jersey number, name, total points, personal fouls.",
		"If a running score or quarter-by-quarter line is visible, fill quarter_scores as [home, away] pairs in order.",
		"Set overtime to true only if a fifth period is recorded.",
		"Copy names exactly as written; do not guess missing digits.",
		"Never output null for a missing optional field. Omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildRosterPrompt composes the instruction for a roster PDF or photo.
// Caller-supplied sport/gender overrides are echoed into the prompt so the
// model does not have to infer them from a header it may misread.
func BuildRosterPrompt(sport constants.Sport, gender constants.Gender) string {
	parts := []string{
		"You are reading a high-school athletics roster document.",
		"Return ONLY JSON that matches the provided JSON Schema. No commentary, no markdown.",
		"Read every player: jersey number, first name, last name, position, grade, height, weight.",
		"Report grade exactly as printed (9, 10th, Jr., Senior, ...); do not convert it.",
		"source_season is the school year printed on the document, formatted like 2024-25.",
	}
	if sport != "" {
		parts = append(parts, "The sport is "+string(sport)+".")
	}
	if gender != "" {
		parts = append(parts, "The team gender is "+string(gender)+".")
	}
	parts = append(parts, "Never output null for a missing optional field. Omit it.")
	return strings.Join(parts, " ")
}

// BuildSchedulePrompt composes the instruction for a schedule document. The
// sport-dependent year rule is stated up front, and independently re-checked
// after decode.
func BuildSchedulePrompt(sport constants.Sport) string {
	parts := []string{
		"You are reading a high-school athletics schedule document.",
		"Return ONLY JSON that matches the provided JSON Schema. No commentary, no markdown.",
		"Dates are usually printed as month/day only. Emit full YYYY-MM-DD dates.",
	}
	switch constants.TermFor(sport) {
	case constants.TermFall:
		parts = append(parts, "This is a fall sport: every game falls in the first calendar year of the season (a 2025-26 season plays entirely in 2025).")
	case constants.TermSpring:
		parts = append(parts, "This is a spring sport: every game falls in the second calendar year of the season (a 2025-26 season plays entirely in 2026).")
	default:
		parts = append(parts, "This season crosses the new year: games in August through December belong to the first calendar year of the season, games in January onward to the second.")
	}
	parts = append(parts,
		"season is the school year printed on the document, formatted like 2025-26.",
		"Mark is_home true when the team hosts, is_conference true for league games.",
		"Never output null for a missing optional field. Omit it.",
	)
	return strings.Join(parts, " ")
}

// ScorebookJSONSchema returns the JSON-Schema (draft 2020-12 subset) for a
// decoded scorebook page. Sent to the model as the output contract and used
// locally to flag drift after decode.
func ScorebookJSONSchema() map[string]any {
	player := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"number": map[string]any{"type": "string"},
			"name":   map[string]any{"type": "string", "minLength": 1},
			"points": map[string]any{"type": "integer"},
			"fouls":  map[string]any{"type": "integer"},
			"quarters": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"q1": map[string]any{"type": "integer"},
					"q2": map[string]any{"type": "integer"},
					"q3": map[string]any{"type": "integer"},
					"q4": map[string]any{"type": "integer"},
					"ot": map[string]any{"type": "integer"},
				},
			},
		},
		"required": []string{"name", "points", "fouls"},
	}
	team := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string"},
			"score":   map[string]any{"type": "integer"},
			"players": map[string]any{"type": "array", "items": player},
		},
		"required": []string{"name", "score", "players"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":      dateProp(),
			"home_team": team,
			"away_team": team,
			"quarter_scores": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "integer"},
					"minItems": 2,
					"maxItems": 2,
				},
			},
			"overtime": map[string]any{"type": "boolean"},
			"location": map[string]any{"type": "string"},
		},
		"required": []string{"date", "home_team", "away_team"},
	}
}

// RosterJSONSchema returns the output contract for roster documents.
func RosterJSONSchema() map[string]any {
	player := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"jersey_number": map[string]any{"type": "string"},
			"first_name":    map[string]any{"type": "string", "minLength": 1},
			"last_name":     map[string]any{"type": "string", "minLength": 1},
			"position":      map[string]any{"type": "string"},
			"grade":         map[string]any{"type": "string"},
			"height_feet":   map[string]any{"type": "integer"},
			"height_inches": map[string]any{"type": "integer"},
			"weight":        map[string]any{"type": "integer"},
		},
		"required": []string{"first_name", "last_name"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"school_name":   map[string]any{"type": "string", "minLength": 1},
			"sport":         map[string]any{"type": "string"},
			"gender":        map[string]any{"type": "string"},
			"source_season": seasonProp(),
			"players":       map[string]any{"type": "array", "items": player},
		},
		"required": []string{"school_name", "source_season", "players"},
	}
}

// ScheduleJSONSchema returns the output contract for schedule documents.
func ScheduleJSONSchema() map[string]any {
	game := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":          dateProp(),
			"time":          map[string]any{"type": "string"},
			"opponent":      map[string]any{"type": "string", "minLength": 1},
			"opponent_city": map[string]any{"type": "string"},
			"is_home":       map[string]any{"type": "boolean"},
			"is_conference": map[string]any{"type": "boolean"},
			"location":      map[string]any{"type": "string"},
		},
		"required": []string{"date", "opponent"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"team_name":      map[string]any{"type": "string", "minLength": 1},
			"sport":          map[string]any{"type": "string"},
			"gender":         map[string]any{"type": "string"},
			"season":         seasonProp(),
			"city":           map[string]any{"type": "string"},
			"classification": map[string]any{"type": "string"},
			"conference":     map[string]any{"type": "string"},
			"games":          map[string]any{"type": "array", "items": game},
		},
		"required": []string{"team_name", "season", "games"},
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}

func seasonProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2,}$`}
}
