// Package match scores free-text descriptions against question titles with
// token-sort similarity. It backs the search_predictions tool; exact ids via
// list_predictions stay the primary lookup path.
package match

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Match pairs an input index with its similarity score (0-100).
type Match struct {
	Index int
	Score int
}

// Rank scores description against every title and returns the matches at or
// above threshold, best first. Ties keep the original title order.
func Rank(description string, titles []string, threshold int) []Match {
	out := make([]Match, 0, len(titles))
	for i, title := range titles {
		// Cleanse both sides (lowercase, strip punctuation) so that case and
		// trailing "?" never count against a title. The library skips
		// cleansing unless told otherwise.
		score := fuzzy.TokenSortRatio(description, title, false, true)
		if score >= threshold {
			out = append(out, Match{Index: i, Score: score})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	return out
}
