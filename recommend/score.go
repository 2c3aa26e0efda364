package recommend

import (
	"sort"

	"travel-webapp/model"
)

// Score weighs the user's own interest in the place's category double
// against global popularity.
func Score(place model.Place, categoryClicks map[string]int) int64 {
	return 2*int64(categoryClicks[place.Category]) + place.Clicks
}

// Rank orders places by descending score, breaking ties by name so the
// result is deterministic, and returns at most limit entries.
func Rank(places []model.Place, categoryClicks map[string]int, limit int) []model.Place {
	ranked := make([]model.Place, len(places))
	copy(ranked, places)

	sort.Slice(ranked, func(i, j int) bool {
		si, sj := Score(ranked[i], categoryClicks), Score(ranked[j], categoryClicks)
		if si != sj {
			return si > sj
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
