package wordgen

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Only the first maxScoredSeeds seed words (sorted order) take part in
// the containment bonus, bounding the per-candidate cost on large sets.
const maxScoredSeeds = 20

var commonTokens = []string{"admin", "user", "pass", "123", "test"}

type scoredCandidate struct {
	word  string
	score int
}

// RankByLikelihood orders candidates by a heuristic likelihood score,
// highest first, ties broken by ascending string order. The result is
// fully deterministic for a fixed candidate and seed set.
func RankByLikelihood(candidates Set, seeds Set, cfg Config) []string {
	years := recentYears(cfg)

	seedWords := seeds.Sorted()
	if len(seedWords) > maxScoredSeeds {
		seedWords = seedWords[:maxScoredSeeds]
	}

	scored := make([]scoredCandidate, 0, candidates.Len())
	for _, candidate := range candidates.Sorted() {
		scored = append(scored, scoredCandidate{
			word:  candidate,
			score: likelihood(candidate, years, seedWords),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].word < scored[j].word
	})

	ranked := make([]string, len(scored))
	for i, sc := range scored {
		ranked[i] = sc.word
	}
	return ranked
}

func likelihood(candidate string, recentYears, seedWords []string) int {
	score := 0
	lower := strings.ToLower(candidate)

	// Optimal length band, then a wider acceptable band.
	switch n := len(candidate); {
	case n >= 8 && n <= 12:
		score += 20
	case n >= 6 && n <= 16:
		score += 10
	}

	for _, year := range recentYears {
		if strings.Contains(candidate, year) {
			score += 15
			break
		}
	}

	for _, token := range commonTokens {
		if strings.Contains(lower, token) {
			score += 10
			break
		}
	}

	if containsFunc(candidate, unicode.IsUpper) && containsFunc(candidate, unicode.IsLower) {
		score += 5
	}

	if candidate != "" && unicode.IsDigit(rune(candidate[len(candidate)-1])) {
		score += 8
	}

	for _, seed := range seedWords {
		if len(seed) >= 4 && strings.Contains(lower, seed) {
			score += 25
			break
		}
	}

	return score
}

// recentYears returns the three newest years the date window can emit,
// or a window around the current year when no end year is configured.
func recentYears(cfg Config) []string {
	end := cfg.EndYear
	if end <= 0 {
		end = time.Now().Year() + 2
	}
	return []string{
		strconv.Itoa(end - 3),
		strconv.Itoa(end - 2),
		strconv.Itoa(end - 1),
	}
}
