// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking candidate names
// ABOUTME: Used to suggest the closest known name for a mistyped one

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find performs fuzzy matching of pattern against items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Best returns the highest ranked item matching pattern.
func Best(pattern string, items []string) (string, bool) {
	if pattern == "" {
		return "", false
	}
	matches := Find(pattern, items)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
