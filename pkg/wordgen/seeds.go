package wordgen

import (
	"strings"
	"unicode/utf8"
)

// Length bounds applied to seed words from bulk sources (files,
// scraped pages). Explicitly given words bypass them.
const (
	minSeedLength = 3
	maxSeedLength = 20
)

// AddSeed normalizes a directly supplied word and adds it to the set.
func AddSeed(seeds Set, word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if word != "" {
		seeds.Add(word)
	}
}

// AddBulkSeed normalizes a word from a bulk source, dropping entries
// outside the [3,20] length window. Length is counted in runes.
func AddBulkSeed(seeds Set, word string) {
	word = strings.TrimSpace(strings.ToLower(word))
	if n := utf8.RuneCountInString(word); n >= minSeedLength && n <= maxSeedLength {
		seeds.Add(word)
	}
}
