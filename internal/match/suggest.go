package match

import (
	"sort"
)

// DefaultThreshold is the minimum NameSimilarity for a suggestion.
const DefaultThreshold = 0.6

// Suggest returns up to limit candidates similar to name, best first. Ties
// are broken alphabetically. A candidate equal to name is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := NameSimilarity(name, c); s >= DefaultThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
