package wordgen

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestMutate_BaseCaseVariants(t *testing.T) {
	words := []string{"admin", "Dragon", "X9z"}

	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			mutations := Mutate(word, LevelBasic, false)

			wanted := []string{
				word,
				strings.ToLower(word),
				strings.ToUpper(word),
				capitalize(word),
			}
			for _, want := range wanted {
				if !mutations.Contains(want) {
					t.Errorf("Mutate(%q, 1) missing %q", word, want)
				}
			}
		})
	}
}

func TestMutate_AdminScenario(t *testing.T) {
	mutations := Mutate("admin", LevelBasic, false)

	wanted := []string{
		"admin", "ADMIN", "Admin",
		"admin1", "Admin123",
		"admin" + strconv.Itoa(time.Now().Year()),
	}
	for _, want := range wanted {
		if !mutations.Contains(want) {
			t.Errorf("level 1 mutations missing %q", want)
		}
	}

	if mutations.Contains("@dmin") {
		t.Error("level 1 without leet must not produce leetspeak forms")
	}
}

func TestMutate_Level1SubsetOfLevel3(t *testing.T) {
	for _, word := range []string{"admin", "secret", "hunter2"} {
		level1 := Mutate(word, LevelBasic, false)
		level3 := Mutate(word, LevelExtreme, false)

		for m := range level1 {
			if !level3.Contains(m) {
				t.Errorf("Mutate(%q, 3) missing level 1 mutation %q", word, m)
			}
		}
	}
}

func TestMutate_EmptyWord(t *testing.T) {
	mutations := Mutate("", LevelExtreme, true)
	if mutations.Len() != 1 || !mutations.Contains("") {
		t.Errorf("Mutate(\"\") = %v, want singleton empty string", mutations.Sorted())
	}
}

func TestMutate_Level2Structural(t *testing.T) {
	mutations := Mutate("dragon", LevelAdvanced, false)

	for _, want := range []string{"nogard", "dragondragon", "drgn"} {
		if !mutations.Contains(want) {
			t.Errorf("level 2 mutations missing %q", want)
		}
	}

	// Doubling is bounded to words of length <= 8.
	long := Mutate("longerword", LevelAdvanced, false)
	if long.Contains("longerwordlongerword") {
		t.Error("words longer than 8 chars must not be doubled")
	}
}

func TestMutate_VowelStripKeepsMinLength(t *testing.T) {
	// "via" strips to "v", below the 3-char floor.
	mutations := Mutate("via", LevelAdvanced, false)
	if mutations.Contains("v") {
		t.Error("degenerate vowel-stripped form should be dropped")
	}
}

func TestMutate_Level3Prefixes(t *testing.T) {
	mutations := Mutate("secret", LevelExtreme, false)

	for _, want := range []string{"usersecret", "user_secret", "rootsecret"} {
		if !mutations.Contains(want) {
			t.Errorf("level 3 mutations missing %q", want)
		}
	}

	// A word already carrying the prefix is not re-prefixed.
	admin := Mutate("adminpanel", LevelExtreme, false)
	if admin.Contains("adminadminpanel") {
		t.Error("prefix must be skipped when word already starts with it")
	}
}

func TestMutate_Level3Substitutions(t *testing.T) {
	mutations := Mutate("secret", LevelExtreme, false)

	for _, want := range []string{"$ecret", "s3cr3t"} {
		if !mutations.Contains(want) {
			t.Errorf("level 3 mutations missing substitution variant %q", want)
		}
	}
}

func TestMutate_LeetRequiresLevel2(t *testing.T) {
	level1 := Mutate("pass", LevelBasic, true)
	if level1.Contains("p@ss") {
		t.Error("leet variants must not appear at level 1")
	}

	level2 := Mutate("pass", LevelAdvanced, true)
	if !level2.Contains("p@ss") {
		t.Error("level 2 with leet enabled should include leet variants")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin", "Admin"},
		{"john.doe", "John.Doe"},
		{"a_b", "A_B"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
