package wordgen

import (
	"reflect"
	"testing"
)

func TestLikelihood_Bonuses(t *testing.T) {
	years := []string{"2023", "2024", "2025"}
	seeds := []string{"admin"}

	tests := []struct {
		candidate string
		want      int
	}{
		// 20 length + 15 year + 10 token + 8 trailing digit + 25 seed
		{"admin2024", 78},
		// 10 length + 10 token + 5 mixed case + 8 trailing digit
		{"Pass123", 33},
		// 20 length band only
		{"zqxwvjkm", 20},
		// nothing applies
		{"zz", 0},
		// year bonus fires once even with two recent years present
		{"20232024", 20 + 15 + 8},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			if got := likelihood(tt.candidate, years, seeds); got != tt.want {
				t.Errorf("likelihood(%q) = %d, want %d", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestRankByLikelihood_Order(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndYear = 2026

	candidates := NewSet("bb", "aa", "admin2024")
	seeds := NewSet("admin")

	got := RankByLikelihood(candidates, seeds, cfg)
	want := []string{"admin2024", "aa", "bb"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByLikelihood = %v, want %v", got, want)
	}
}

func TestRankByLikelihood_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndYear = 2026

	candidates := NewSet(
		"admin", "Admin123", "qwerty", "sunmoon",
		"pass2024", "PASS", "x", "hunter2",
	)
	seeds := NewSet("admin", "hunter")

	first := RankByLikelihood(candidates, seeds, cfg)
	second := RankByLikelihood(candidates, seeds, cfg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two rankings differ:\n%v\n%v", first, second)
	}
	if len(first) != candidates.Len() {
		t.Errorf("ranking dropped candidates: %d of %d", len(first), candidates.Len())
	}
}

func TestRankByLikelihood_SeedBoundIsSorted(t *testing.T) {
	// Only the first 20 sorted seeds participate in the containment
	// bonus; a seed sorting past the bound must not score.
	seeds := NewSet()
	for i := 0; i < 20; i++ {
		seeds.Add(string([]byte{'a', byte('a' + i), 'x', 'y'}))
	}
	seeds.Add("zulu") // sorts last, beyond the bound

	cfg := DefaultConfig()
	cfg.EndYear = 2026

	got := RankByLikelihood(NewSet("zulu", "aaxy"), seeds, cfg)
	// "aaxy" gets the +25 containment bonus, "zulu" does not.
	want := []string{"aaxy", "zulu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankByLikelihood = %v, want %v", got, want)
	}
}
