package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prepsportshq/preps-extract/constants"
)

func TestAdvance(t *testing.T) {
	assert.Equal(t, "2025-26", Advance("2024-25"))
	assert.Equal(t, "2026-27", Advance(Advance("2024-25")))
	assert.Equal(t, "2000-01", Advance("1999-00"))
	assert.Equal(t, "2100-01", Advance("2099-00"))
}

func TestAdvancePassthrough(t *testing.T) {
	assert.Equal(t, "2024", Advance("2024"))
	assert.Equal(t, "Winter 2024", Advance("Winter 2024"))
	assert.Equal(t, "", Advance(""))
}

func TestYears(t *testing.T) {
	first, second, ok := Years("2024-25")
	assert.True(t, ok)
	assert.Equal(t, 2024, first)
	assert.Equal(t, 2025, second)

	_, _, ok = Years("24-25")
	assert.False(t, ok)
}

func TestYearForFallSport(t *testing.T) {
	year, ok := YearFor(constants.Football, "2025-26", time.September)
	assert.True(t, ok)
	assert.Equal(t, 2025, year)

	// Fall sports never spill into the second year, whatever the month.
	year, _ = YearFor(constants.Football, "2025-26", time.January)
	assert.Equal(t, 2025, year)
}

func TestYearForSpringSport(t *testing.T) {
	year, ok := YearFor(constants.Lacrosse, "2025-26", time.April)
	assert.True(t, ok)
	assert.Equal(t, 2026, year)

	year, _ = YearFor(constants.Baseball, "2025-26", time.March)
	assert.Equal(t, 2026, year)
}

func TestYearForWinterSportSplitsOnAugust(t *testing.T) {
	year, _ := YearFor(constants.Basketball, "2024-25", time.December)
	assert.Equal(t, 2024, year)

	year, _ = YearFor(constants.Basketball, "2024-25", time.August)
	assert.Equal(t, 2024, year)

	year, _ = YearFor(constants.Basketball, "2024-25", time.January)
	assert.Equal(t, 2025, year)

	year, _ = YearFor(constants.Basketball, "2024-25", time.July)
	assert.Equal(t, 2025, year)
}

func TestYearForBadSeason(t *testing.T) {
	_, ok := YearFor(constants.Basketball, "winter", time.January)
	assert.False(t, ok)
}

func TestNormalizeDateBareMonthDay(t *testing.T) {
	assert.Equal(t, "2024-12-05", NormalizeDate("12/5", constants.Basketball, "2024-25"))
	assert.Equal(t, "2025-02-10", NormalizeDate("2/10", constants.Basketball, "2024-25"))
	assert.Equal(t, "2026-04-01", NormalizeDate("4/1", constants.Lacrosse, "2025-26"))
	assert.Equal(t, "2025-09-12", NormalizeDate("9/12", constants.Football, "2025-26"))
}

func TestNormalizeDateCorrectsMisTaggedYear(t *testing.T) {
	// The model guessed the wrong calendar year; the season rule wins.
	assert.Equal(t, "2025-01-15", NormalizeDate("2024-01-15", constants.Basketball, "2024-25"))
	assert.Equal(t, "2025-01-15", NormalizeDate("1/15/24", constants.Basketball, "2024-25"))
}

func TestNormalizeDateIdempotent(t *testing.T) {
	once := NormalizeDate("12/5", constants.Basketball, "2024-25")
	assert.Equal(t, once, NormalizeDate(once, constants.Basketball, "2024-25"))
}

func TestNormalizeDatePassthrough(t *testing.T) {
	assert.Equal(t, "TBD", NormalizeDate("TBD", constants.Basketball, "2024-25"))
	assert.Equal(t, "13/40", NormalizeDate("13/40", constants.Basketball, "2024-25"))
	assert.Equal(t, "12/5", NormalizeDate("12/5", constants.Basketball, "bad-season"))
}
