package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeGrade(t *testing.T) {
	cases := map[string]string{
		"9":         "FR",
		"9th":       "FR",
		"Fr.":       "FR",
		"freshman":  "FR",
		"FRESHMEN":  "FR",
		"10":        "SO",
		"Soph":      "SO",
		"sophomore": "SO",
		"11":        "JR",
		"Jr.":       "JR",
		"junior":    "JR",
		"12":        "SR",
		"Sr":        "SR",
		"Senior":    "SR",
		" 12th ":    "SR",
	}
	for input, want := range cases {
		assert.Equal(t, want, CanonicalizeGrade(input), "input %q", input)
	}
}

func TestCanonicalizeGradeUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "8TH", CanonicalizeGrade("8th"))
	assert.Equal(t, "POST-GRAD", CanonicalizeGrade("post-grad"))
	assert.Equal(t, "", CanonicalizeGrade("  "))
}

func TestProgressGrade(t *testing.T) {
	next, dropped := ProgressGrade("FR")
	assert.Equal(t, "SO", next)
	assert.False(t, dropped)

	next, dropped = ProgressGrade("SO")
	assert.Equal(t, "JR", next)
	assert.False(t, dropped)

	next, dropped = ProgressGrade("JR")
	assert.Equal(t, "SR", next)
	assert.False(t, dropped)

	next, dropped = ProgressGrade("SR")
	assert.Equal(t, "SR", next)
	assert.True(t, dropped)
}

func TestProgressGradeNonCanonical(t *testing.T) {
	next, dropped := ProgressGrade("8TH")
	assert.Equal(t, "8TH", next)
	assert.False(t, dropped)
}

func TestCanonicalizeSport(t *testing.T) {
	s, ok := CanonicalizeSport("basketball")
	assert.True(t, ok)
	assert.Equal(t, Basketball, s)

	s, ok = CanonicalizeSport("Girls Basketball")
	assert.True(t, ok)
	assert.Equal(t, Basketball, s)

	s, ok = CanonicalizeSport("lax")
	assert.True(t, ok)
	assert.Equal(t, Lacrosse, s)

	_, ok = CanonicalizeSport("curling")
	assert.False(t, ok)

	_, ok = CanonicalizeSport("")
	assert.False(t, ok)
}

func TestTermFor(t *testing.T) {
	assert.Equal(t, TermFall, TermFor(Football))
	assert.Equal(t, TermWinter, TermFor(Basketball))
	assert.Equal(t, TermWinter, TermFor(Wrestling))
	assert.Equal(t, TermSpring, TermFor(Baseball))
	assert.Equal(t, TermSpring, TermFor(Lacrosse))
	assert.Equal(t, TermWinter, TermFor(Sport("UNKNOWN")))
}

func TestCanonicalizeGender(t *testing.T) {
	g, ok := CanonicalizeGender("boys")
	assert.True(t, ok)
	assert.Equal(t, Boys, g)

	g, ok = CanonicalizeGender("W")
	assert.True(t, ok)
	assert.Equal(t, Girls, g)

	_, ok = CanonicalizeGender("coed")
	assert.False(t, ok)
}
