// Package wordgen generates candidate password lists for authorized
// security testing. Seed words are expanded through mutation,
// combination, pattern-mask, keyboard-walk and date generators, then
// filtered and optionally ranked by a likelihood heuristic. Every
// stage is a pure function over value snapshots; the Generator only
// sequences them and accumulates counters.
package wordgen

// Bounds on the word/date cross join.
const (
	maxDateJoinWords = 20
	maxDateJoinDates = 20
)

// Stats reports per-stage counters for one generation run. Fields are
// written once during Generate and read afterward.
type Stats struct {
	BaseWords    int `json:"base_words"`
	Mutations    int `json:"mutations"`
	Combinations int `json:"combinations"`
	Filtered     int `json:"filtered"`
	Total        int `json:"total"`
}

// Generator runs the generation pipeline for a fixed Config.
type Generator struct {
	cfg   Config
	stats Stats
}

func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Stats returns the counters accumulated by the last Generate call.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Generate expands the seed words into the final candidate list:
// mutations and combinations of the seeds, then the independent
// generators, then filtering and optional likelihood ranking. With
// ranking disabled the output is sorted lexicographically so two runs
// over the same inputs produce the same list.
func (g *Generator) Generate(seeds Set) []string {
	cfg := g.cfg
	g.stats = Stats{BaseWords: seeds.Len()}

	level := cfg.MutationLevel
	if cfg.Leet && level < LevelAdvanced {
		level = LevelAdvanced
	}

	working := NewSet()
	sortedSeeds := seeds.Sorted()

	for _, word := range sortedSeeds {
		mutations := Mutate(word, level, cfg.Leet)
		g.stats.Mutations += mutations.Len()
		working.Merge(mutations)
	}

	if cfg.Combinations && seeds.Len() > 1 {
		combos := Combinations(sortedSeeds, cfg.MaxCombinationLength)
		g.stats.Combinations = combos.Len()
		working.Merge(combos)
	}

	if cfg.Dates {
		dates := Dates(cfg.StartYear, cfg.EndYear)
		working.Merge(dates)

		joinWords := sortedSeeds
		if len(joinWords) > maxDateJoinWords {
			joinWords = joinWords[:maxDateJoinWords]
		}
		joinDates := dates.Sorted()
		if len(joinDates) > maxDateJoinDates {
			joinDates = joinDates[:maxDateJoinDates]
		}
		for _, word := range joinWords {
			for _, date := range joinDates {
				working.Add(word + date)
				working.Add(date + word)
			}
		}
	}

	if cfg.KeyboardWalks {
		working.Merge(KeyboardWalks())
	}

	limit := cfg.PatternLimit
	if limit <= 0 {
		limit = DefaultPatternLimit
	}
	for _, pattern := range cfg.Patterns {
		working.Merge(ExpandPattern(pattern, limit))
	}

	if len(cfg.FirstNames) > 0 && len(cfg.LastNames) > 0 {
		working.Merge(FromNames(cfg.FirstNames, cfg.LastNames, cfg.Company))
	}

	before := working.Len()
	filtered := Filter(working, cfg)
	g.stats.Filtered = before - filtered.Len()

	var result []string
	if cfg.SmartOrder {
		result = RankByLikelihood(filtered, seeds, cfg)
	} else {
		result = filtered.Sorted()
	}

	g.stats.Total = len(result)
	return result
}
