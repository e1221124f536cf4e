package extraction

import (
	"fmt"
	"strings"
	"time"
)

// ValidateGame checks a decoded basketball game against the scorebook
// invariants. Pure and total; the issue order is the fixed display order.
func ValidateGame(g *BasketballGame) []ValidationIssue {
	issues := make([]ValidationIssue, 0, 4)
	if g == nil {
		return issues
	}

	sides := []struct {
		prefix string
		team   *TeamResult
	}{
		{"homeTeam", &g.HomeTeam},
		{"awayTeam", &g.AwayTeam},
	}

	// 1. Per-team score consistency.
	for _, side := range sides {
		total := 0
		for _, p := range side.team.Players {
			total += p.Points
		}
		if total != side.team.Score {
			issues = append(issues, errorIssue(
				CodePointsMismatch,
				fmt.Sprintf("%s: player points total %d but team score is %d", side.team.Name, total, side.team.Score),
				side.prefix+".score",
			))
		}
	}

	// 2. Per-player foul bounds.
	for _, side := range sides {
		for i, p := range side.team.Players {
			path := fmt.Sprintf("%s.players[%d].fouls", side.prefix, i)
			if p.Fouls > 5 {
				issues = append(issues, errorIssue(
					CodeFoulsExceedMax,
					fmt.Sprintf("%s: %s has %d fouls (max 5)", side.team.Name, p.Name, p.Fouls),
					path,
				))
			} else if p.Fouls < 0 {
				issues = append(issues, errorIssue(
					CodeNegativeFouls,
					fmt.Sprintf("%s: %s has negative fouls (%d)", side.team.Name, p.Name, p.Fouls),
					path,
				))
			}
		}
	}

	// 3. Quarter-score consistency, only when quarter scores were read.
	if len(g.QuarterScores) > 0 {
		homeSum, awaySum := 0, 0
		for _, q := range g.QuarterScores {
			homeSum += q[0]
			awaySum += q[1]
		}
		if homeSum != g.HomeTeam.Score {
			issues = append(issues, errorIssue(
				CodeQuarterScoreMismatch,
				fmt.Sprintf("home quarter scores total %d but team score is %d", homeSum, g.HomeTeam.Score),
				"quarterScores",
			))
		}
		if awaySum != g.AwayTeam.Score {
			issues = append(issues, errorIssue(
				CodeQuarterScoreMismatch,
				fmt.Sprintf("away quarter scores total %d but team score is %d", awaySum, g.AwayTeam.Score),
				"quarterScores",
			))
		}
		expected := 4
		if g.Overtime {
			expected = 5
		}
		// A missing trailing OT quarter is common and should not block approval.
		if len(g.QuarterScores) != expected {
			issues = append(issues, warningIssue(
				CodeUnexpectedQuarterCount,
				fmt.Sprintf("expected %d quarter entries, found %d", expected, len(g.QuarterScores)),
				"quarterScores",
			))
		}
	}

	// 4. Required fields.
	if strings.TrimSpace(g.HomeTeam.Name) == "" {
		issues = append(issues, errorIssue(CodeMissingTeamName, "home team name is missing", "homeTeam.name"))
	}
	if strings.TrimSpace(g.AwayTeam.Name) == "" {
		issues = append(issues, errorIssue(CodeMissingTeamName, "away team name is missing", "awayTeam.name"))
	}
	if _, err := time.Parse("2006-01-02", g.Date); err != nil {
		issues = append(issues, errorIssue(
			CodeInvalidDate,
			fmt.Sprintf("game date %q is not a valid YYYY-MM-DD date", g.Date),
			"date",
		))
	}

	return issues
}
