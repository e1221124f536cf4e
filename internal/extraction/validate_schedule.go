package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var scheduleDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateSchedule checks a normalized schedule for structural problems.
// Duplicate (date, opponent) pairs are flagged, never merged; the human
// reviewer decides which entry survives.
func ValidateSchedule(s *ExtractedSchedule) []ValidationIssue {
	issues := make([]ValidationIssue, 0, 2)
	if s == nil {
		return issues
	}

	if strings.TrimSpace(s.TeamName) == "" {
		issues = append(issues, errorIssue(CodeMissingTeamName, "team name is missing", "teamName"))
	}
	if len(s.Games) == 0 {
		issues = append(issues, errorIssue(CodeNoGames, "schedule has no games", "games"))
	}

	seen := make(map[string]int, len(s.Games))
	for i, g := range s.Games {
		datePath := fmt.Sprintf("games[%d].date", i)
		if !scheduleDateRe.MatchString(g.Date) {
			issues = append(issues, errorIssue(
				CodeInvalidDate,
				fmt.Sprintf("game %d date %q is not in YYYY-MM-DD format", i+1, g.Date),
				datePath,
			))
		} else if _, err := time.Parse("2006-01-02", g.Date); err != nil {
			issues = append(issues, errorIssue(
				CodeInvalidDate,
				fmt.Sprintf("game %d date %q is not a valid calendar date", i+1, g.Date),
				datePath,
			))
		}

		if strings.TrimSpace(g.Opponent) == "" {
			issues = append(issues, errorIssue(
				CodeMissingOpponent,
				fmt.Sprintf("game %d is missing an opponent", i+1),
				fmt.Sprintf("games[%d].opponent", i),
			))
			continue
		}

		key := g.Date + "|" + strings.ToLower(strings.TrimSpace(g.Opponent))
		if first, dup := seen[key]; dup {
			issues = append(issues, errorIssue(
				CodeDuplicateGame,
				fmt.Sprintf("game %d duplicates game %d (%s vs %s)", i+1, first+1, g.Date, g.Opponent),
				fmt.Sprintf("games[%d]", i),
			))
		} else {
			seen[key] = i
		}
	}

	return issues
}
