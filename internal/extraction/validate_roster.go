package extraction

import (
	"fmt"
	"strings"
)

// ValidateRoster checks a normalized roster for structural problems.
func ValidateRoster(r *ExtractedRoster) []ValidationIssue {
	issues := make([]ValidationIssue, 0, 2)
	if r == nil {
		return issues
	}

	if strings.TrimSpace(r.SchoolName) == "" {
		issues = append(issues, errorIssue(CodeMissingSchoolName, "school name is missing", "schoolName"))
	}
	if len(r.Players) == 0 {
		issues = append(issues, errorIssue(CodeNoPlayers, "roster has no players", "players"))
	}
	for i, p := range r.Players {
		if strings.TrimSpace(p.FirstName) == "" {
			issues = append(issues, errorIssue(
				CodeMissingPlayerName,
				fmt.Sprintf("player %d is missing a first name", i+1),
				fmt.Sprintf("players[%d].firstName", i),
			))
		}
		if strings.TrimSpace(p.LastName) == "" {
			issues = append(issues, errorIssue(
				CodeMissingPlayerName,
				fmt.Sprintf("player %d is missing a last name", i+1),
				fmt.Sprintf("players[%d].lastName", i),
			))
		}
	}

	return issues
}
