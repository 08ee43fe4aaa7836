package leveldata

import (
	"path"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name by edit distance, ignoring
// extensions and case. It reports false when nothing is reasonably close.
func Suggest(name string, candidates []string) (string, bool) {
	want := stem(name)
	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(want, stem(cand))
		if dist > suggestLimit(len(want)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func stem(name string) string {
	base := path.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

func suggestLimit(n int) int {
	if n <= 4 {
		return 1
	}
	if n <= 8 {
		return 2
	}
	return 3
}
