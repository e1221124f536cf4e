// Package season implements school-year arithmetic: season-string
// advancement and sport-aware calendar-year inference for schedule dates.
// Everything here is pure and total; malformed input passes through rather
// than erroring, because these transforms run as a safety net after a
// non-deterministic model step.
package season

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/prepsportshq/preps-extract/constants"
)

var (
	seasonRe   = regexp.MustCompile(`^(\d{4})-(\d{2,})$`)
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	bareDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
)

// Advance moves a season string forward one school year: "2024-25" becomes
// "2025-26". Input that does not look like a season string is returned
// unchanged.
func Advance(s string) string {
	m := seasonRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	first, err := strconv.Atoi(m[1])
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d-%02d", first+1, (first+2)%100)
}

// Years parses "YYYY-YY" into the two calendar years the school year spans.
func Years(s string) (first, second int, ok bool) {
	m := seasonRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	first, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	return first, first + 1, true
}

// YearFor returns the calendar year a game in the given month belongs to,
// per the sport's term. Fall sports play entirely in the season's first
// year, spring sports in the second, and winter sports split on August:
// month >= 8 is the first year, otherwise the second.
func YearFor(sport constants.Sport, seasonStr string, month time.Month) (int, bool) {
	first, second, ok := Years(seasonStr)
	if !ok {
		return 0, false
	}
	switch constants.TermFor(sport) {
	case constants.TermFall:
		return first, true
	case constants.TermSpring:
		return second, true
	default:
		if month >= time.August {
			return first, true
		}
		return second, true
	}
}

// NormalizeDate turns a model-produced date into "YYYY-MM-DD" with the year
// the season rule dictates. It accepts bare "M/D" or "M/D/YY[YY]" forms and
// already-ISO dates; in every case the year is recomputed from the sport and
// season, so a mis-tagged year is corrected. Unparseable input passes
// through unchanged. Reapplying is a no-op.
func NormalizeDate(raw string, sport constants.Sport, seasonStr string) string {
	var month, day int

	if m := isoDateRe.FindStringSubmatch(raw); m != nil {
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := bareDateRe.FindStringSubmatch(raw); m != nil {
		month, _ = strconv.Atoi(m[1])
		day, _ = strconv.Atoi(m[2])
	} else {
		return raw
	}
	if month < 1 || month > 12 {
		return raw
	}

	year, ok := YearFor(sport, seasonStr, time.Month(month))
	if !ok {
		return raw
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
