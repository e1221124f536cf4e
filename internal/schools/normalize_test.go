package schools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSchoolWords(t *testing.T) {
	cases := map[string]string{
		"Cannon High School":     "Cannon",
		"Cannon HS":              "Cannon",
		"Cannon H.S.":            "Cannon",
		"Cannon School":          "Cannon",
		"Cannon Academy":         "Cannon",
		"Cannon Prep":            "Cannon",
		"Cannon Preparatory":     "Cannon",
		"Cannon":                 "Cannon",
		"Jay M. Robinson High School": "Jay M. Robinson",
		"  Cox   Mill  HS  ":     "Cox Mill",
	}
	for input, want := range cases {
		assert.Equal(t, want, StripSchoolWords(input), "input %q", input)
	}
}

func TestStripSchoolWordsKeepsEmbeddedLetters(t *testing.T) {
	// "hs" only strips as a standalone word.
	assert.Equal(t, "Hickory Ridge", StripSchoolWords("Hickory Ridge"))
	assert.Equal(t, "Marshside", StripSchoolWords("Marshside"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "cannon-high-school", Slugify("Cannon High School"))
	assert.Equal(t, "jay-m-robinson", Slugify("Jay M. Robinson"))
	assert.Equal(t, "cox-mill", Slugify("  Cox  Mill!  "))
	assert.Equal(t, "st-stephens", Slugify("St. Stephens"))
}
