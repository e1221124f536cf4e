package constants

import "strings"

type Sport string

const (
	Basketball Sport = "BASKETBALL"
	Football   Sport = "FOOTBALL"
	Lacrosse   Sport = "LACROSSE"
	Baseball   Sport = "BASEBALL"
	Softball   Sport = "SOFTBALL"
	Track      Sport = "TRACK"
	Wrestling  Sport = "WRESTLING"
	Swimming   Sport = "SWIMMING"
)

var allSports = []Sport{
	Basketball,
	Football,
	Lacrosse,
	Baseball,
	Softball,
	Track,
	Wrestling,
	Swimming,
}

// SportNames returns the canonical sport labels as plain strings.
func SportNames() []string {
	result := make([]string, len(allSports))
	for i, s := range allSports {
		result[i] = string(s)
	}
	return result
}

// CanonicalizeSport maps free-form sport labels to a canonical Sport.
func CanonicalizeSport(input string) (Sport, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Sport{
		"boys basketball":  Basketball,
		"girls basketball": Basketball,
		"hoops":            Basketball,
		"bball":            Basketball,
		"lax":              Lacrosse,
		"track and field":  Track,
		"track & field":    Track,
		"swim":             Swimming,
		"swim and dive":    Swimming,
	}

	if s, ok := synonyms[normalized]; ok {
		return s, true
	}

	for _, s := range allSports {
		if normalized == strings.ToLower(string(s)) {
			return s, true
		}
	}

	return "", false
}

// Term is the part of the school year a sport's season occupies.
type Term string

const (
	TermFall   Term = "FALL"
	TermWinter Term = "WINTER"
	TermSpring Term = "SPRING"
)

// TermFor classifies a sport into its season term. Unknown sports are
// treated as winter so they get the month-based year split rather than a
// fixed year.
func TermFor(sport Sport) Term {
	switch sport {
	case Football:
		return TermFall
	case Lacrosse, Baseball, Softball, Track:
		return TermSpring
	case Basketball, Wrestling, Swimming:
		return TermWinter
	default:
		return TermWinter
	}
}

type Gender string

const (
	Boys  Gender = "Boys"
	Girls Gender = "Girls"
)

// CanonicalizeGender maps free-form gender labels to Boys/Girls.
func CanonicalizeGender(input string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "boys", "boy", "b", "m", "men", "mens", "male":
		return Boys, true
	case "girls", "girl", "g", "w", "women", "womens", "female":
		return Girls, true
	}
	return "", false
}
