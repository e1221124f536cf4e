package schools

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// suggest ranks existing canonical names against the input spelling so a
// reviewer can spot a near-miss that resolution did not match. Informational
// only; failures degrade to no suggestions.
func (r *Resolver) suggest(ctx context.Context, input, exclude string) []string {
	names, err := r.store.ListNames(ctx)
	if err != nil {
		r.logger.Warn("schools.suggest.list_failed", "error", err)
		return nil
	}

	lookup := make(map[string]string, len(names))
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		lookup[lower] = name
		lowered = append(lowered, lower)
	}

	ranks := fuzzy.RankFind(strings.ToLower(StripSchoolWords(input)), lowered)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		name := lookup[rank.Target]
		if strings.EqualFold(name, exclude) {
			continue
		}
		suggestions = append(suggestions, name)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}
