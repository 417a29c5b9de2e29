package wordgen

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Mutation levels.
const (
	LevelBasic    = 1 // case variants and simple suffixes
	LevelAdvanced = 2 // adds structural variants and leetspeak
	LevelExtreme  = 3 // adds role prefixes and character substitution
)

// commonSuffixes is ordered by how often each appears appended to real
// passwords; level 1 uses only the first ten entries.
var commonSuffixes = []string{
	"1", "12", "123", "1234", "12345", "123456",
	"!", "@", "#", "$", "!!", "!@#", "123!",
	"00", "01", "11", "22", "69", "77", "88", "99",
	"2020", "2021", "2022", "2023", "2024", "2025",
	"_", ".", "-",
}

var commonPrefixes = []string{
	"admin", "user", "test", "demo", "guest",
	"root", "super", "master", "pass", "pwd",
}

// Mutate expands a single seed word into its case, suffix, year and
// structural variants. Higher levels add categories on top of the
// level 1 base set; leet controls whether level 2 includes leetspeak.
func Mutate(word string, level int, leet bool) Set {
	mutations := NewSet(word)
	if word == "" {
		return mutations
	}

	mutations.Add(strings.ToLower(word))
	mutations.Add(strings.ToUpper(word))
	mutations.Add(capitalize(word))
	mutations.Add(titleCase(word))

	suffixes := commonSuffixes
	if level == LevelBasic {
		suffixes = commonSuffixes[:10]
	}
	for _, suffix := range suffixes {
		mutations.Add(word + suffix)
		mutations.Add(capitalize(word) + suffix)
	}

	currentYear := time.Now().Year()
	for offset := -2; offset <= 2; offset++ {
		year := strconv.Itoa(currentYear + offset)
		mutations.Add(word + year)
		mutations.Add(word + year[len(year)-2:])
	}

	if level >= LevelAdvanced {
		mutations.Add(reverse(word))

		if len(word) <= 8 {
			mutations.Add(word + word)
		}

		if stripped := stripVowels(word); len(stripped) >= 3 {
			mutations.Add(stripped)
		}

		if leet {
			mutations.Merge(Leetspeak(word, DefaultLeetVariants))
		}
	}

	if level >= LevelExtreme {
		lower := strings.ToLower(word)
		for _, prefix := range commonPrefixes {
			if strings.HasPrefix(lower, prefix) {
				continue
			}
			mutations.Add(prefix + word)
			mutations.Add(prefix + "_" + word)
		}

		mutations.Add(strings.NewReplacer("a", "@", "s", "$").Replace(word))
		mutations.Add(strings.NewReplacer("e", "3", "o", "0").Replace(word))
	}

	return mutations
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	r := []rune(strings.ToLower(word))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// titleCase upper-cases the first letter of every letter run, so
// "john.doe" becomes "John.Doe". For a plain word it matches capitalize.
func titleCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	prevLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

func reverse(word string) string {
	r := []rune(word)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func stripVowels(word string) string {
	var b strings.Builder
	for _, r := range word {
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
