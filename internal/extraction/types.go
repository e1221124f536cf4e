// Package extraction turns vision-model output into typed, validated
// domain structures for scorebook photos, roster PDFs, and schedule PDFs.
package extraction

import (
	"github.com/prepsportshq/preps-extract/constants"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Stable issue codes. Error-severity codes block one-click approval in the
// review UI; warnings are informational only.
const (
	CodeExtractionFailed       = "EXTRACTION_FAILED"
	CodeDecodeFailed           = "DECODE_FAILED"
	CodeSchemaMismatch         = "SCHEMA_MISMATCH"
	CodePointsMismatch         = "POINTS_MISMATCH"
	CodeFoulsExceedMax         = "FOULS_EXCEED_MAX"
	CodeNegativeFouls          = "NEGATIVE_FOULS"
	CodeQuarterScoreMismatch   = "QUARTER_SCORE_MISMATCH"
	CodeUnexpectedQuarterCount = "UNEXPECTED_QUARTER_COUNT"
	CodeMissingTeamName        = "MISSING_TEAM_NAME"
	CodeInvalidDate            = "INVALID_DATE"
	CodeMissingSchoolName      = "MISSING_SCHOOL_NAME"
	CodeNoPlayers              = "NO_PLAYERS"
	CodeMissingPlayerName      = "MISSING_PLAYER_NAME"
	CodeNoGames                = "NO_GAMES"
	CodeMissingOpponent        = "MISSING_OPPONENT"
	CodeDuplicateGame          = "DUPLICATE_GAME"
)

// ValidationIssue is an immutable finding produced by a validator.
type ValidationIssue struct {
	Code      string   `json:"code"`
	Message   string   `json:"message"`
	FieldPath string   `json:"field_path,omitempty"`
	Severity  Severity `json:"severity"`
}

func errorIssue(code, message, fieldPath string) ValidationIssue {
	return ValidationIssue{Code: code, Message: message, FieldPath: fieldPath, Severity: SeverityError}
}

func warningIssue(code, message, fieldPath string) ValidationIssue {
	return ValidationIssue{Code: code, Message: message, FieldPath: fieldPath, Severity: SeverityWarning}
}

// Passed reports whether no error-severity issues are present.
func Passed(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Result is the outcome of one extraction attempt. Data is non-nil whenever
// decode succeeded, even if validation found errors, so the reviewer can fix
// fields in place instead of re-uploading.
type Result[T any] struct {
	Success          bool              `json:"success"`
	Data             *T                `json:"data"`
	Issues           []ValidationIssue `json:"issues"`
	Raw              string            `json:"raw"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}

// QuarterPoints is a per-player scoring breakdown when the scorebook shows one.
type QuarterPoints struct {
	Q1 int `json:"q1"`
	Q2 int `json:"q2"`
	Q3 int `json:"q3"`
	Q4 int `json:"q4"`
	OT int `json:"ot"`
}

type PlayerLine struct {
	Number   *string        `json:"number"`
	Name     string         `json:"name"`
	Points   int            `json:"points"`
	Fouls    int            `json:"fouls"`
	Quarters *QuarterPoints `json:"quarters,omitempty"`
}

type TeamResult struct {
	Name    string       `json:"name"`
	Score   int          `json:"score"`
	Players []PlayerLine `json:"players"`
}

// BasketballGame is the decoded shape of one scorebook page.
type BasketballGame struct {
	Date          string     `json:"date"` // YYYY-MM-DD
	HomeTeam      TeamResult `json:"home_team"`
	AwayTeam      TeamResult `json:"away_team"`
	QuarterScores [][2]int   `json:"quarter_scores,omitempty"` // [home, away] per quarter
	Overtime      bool       `json:"overtime"`
	Location      *string    `json:"location,omitempty"`
}

type ExtractedPlayer struct {
	JerseyNumber    string  `json:"jersey_number"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Position        string  `json:"position,omitempty"`
	Grade           *string `json:"grade"`
	ProgressedGrade *string `json:"progressed_grade"`
	HeightFeet      *int    `json:"height_feet,omitempty"`
	HeightInches    *int    `json:"height_inches,omitempty"`
	Weight          *int    `json:"weight,omitempty"`
	Dropped         bool    `json:"dropped"`
}

// ExtractedRoster is a prior-season roster advanced one school year for the
// next-season import.
type ExtractedRoster struct {
	SchoolName   string            `json:"school_name"`
	Sport        constants.Sport   `json:"sport"`
	Gender       constants.Gender  `json:"gender"`
	SourceSeason string            `json:"source_season"`
	TargetSeason string            `json:"target_season"`
	Players      []ExtractedPlayer `json:"players"`
}

type ExtractedGame struct {
	Date         string `json:"date"` // YYYY-MM-DD after normalization
	Time         string `json:"time,omitempty"`
	Opponent     string `json:"opponent"`
	OpponentCity string `json:"opponent_city,omitempty"`
	IsHome       bool   `json:"is_home"`
	IsConference bool   `json:"is_conference"`
	Location     string `json:"location,omitempty"`
}

type ExtractedSchedule struct {
	TeamName       string           `json:"team_name"`
	Sport          constants.Sport  `json:"sport"`
	Gender         constants.Gender `json:"gender"`
	Season         string           `json:"season"`
	City           string           `json:"city,omitempty"`
	Classification string           `json:"classification,omitempty"`
	Conference     string           `json:"conference,omitempty"`
	Games          []ExtractedGame  `json:"games"`
}
