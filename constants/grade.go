package constants

import "strings"

// Grade is a canonical high-school grade level.
type Grade string

const (
	Freshman  Grade = "FR"
	Sophomore Grade = "SO"
	Junior    Grade = "JR"
	Senior    Grade = "SR"
)

// gradeSynonyms covers the spellings vision models tend to produce for each
// grade level. Keys are lowercased with trailing periods removed.
var gradeSynonyms = map[string]Grade{
	"9":         Freshman,
	"9th":       Freshman,
	"fr":        Freshman,
	"fresh":     Freshman,
	"freshman":  Freshman,
	"freshmen":  Freshman,
	"10":        Sophomore,
	"10th":      Sophomore,
	"so":        Sophomore,
	"soph":      Sophomore,
	"sophomore": Sophomore,
	"11":        Junior,
	"11th":      Junior,
	"jr":        Junior,
	"jun":       Junior,
	"junior":    Junior,
	"12":        Senior,
	"12th":      Senior,
	"sr":        Senior,
	"sen":       Senior,
	"senior":    Senior,
}

// CanonicalizeGrade maps a free-form grade token to FR/SO/JR/SR. Unknown
// tokens pass through upper-cased so downstream review still sees them; this
// never fails.
func CanonicalizeGrade(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimSuffix(trimmed, "."))
	if g, ok := gradeSynonyms[key]; ok {
		return string(g)
	}
	return strings.ToUpper(trimmed)
}

// ProgressGrade advances a canonical grade by one school year. Seniors stay
// SR but are reported as dropped (graduated). Non-canonical input passes
// through unchanged and is never dropped.
func ProgressGrade(grade string) (next string, dropped bool) {
	switch Grade(grade) {
	case Freshman:
		return string(Sophomore), false
	case Sophomore:
		return string(Junior), false
	case Junior:
		return string(Senior), false
	case Senior:
		return string(Senior), true
	default:
		return grade, false
	}
}
