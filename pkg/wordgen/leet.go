package wordgen

import "strings"

// DefaultLeetVariants caps leetspeak expansion; the final set never
// exceeds twice this value.
const DefaultLeetVariants = 5

// leetTable is deliberately conservative. The iteration order matters:
// substitutions for earlier letters win the bounded expansion slots.
var leetTable = []struct {
	letter       string
	replacements []string
}{
	{"a", []string{"@", "4"}},
	{"e", []string{"3"}},
	{"i", []string{"1", "!"}},
	{"o", []string{"0"}},
	{"s", []string{"5", "$"}},
	{"t", []string{"7"}},
	{"l", []string{"1"}},
	{"g", []string{"9"}},
}

// Leetspeak produces substitution variants of word with controlled
// growth: per letter only the first maxVariants current variants are
// expanded, expansion halts once the set exceeds 2*maxVariants, and
// the result is truncated to 2*maxVariants entries. Truncation always
// keeps the lexicographically smallest members.
func Leetspeak(word string, maxVariants int) Set {
	variants := NewSet(word)
	lower := strings.ToLower(word)

	for _, entry := range leetTable {
		if !strings.Contains(lower, entry.letter) {
			continue
		}

		snapshot := variants.Sorted()
		if len(snapshot) > maxVariants {
			snapshot = snapshot[:maxVariants]
		}

		fresh := NewSet()
		for _, variant := range snapshot {
			for _, repl := range entry.replacements {
				fresh.Add(strings.ReplaceAll(variant, entry.letter, repl))
				fresh.Add(strings.ReplaceAll(variant, strings.ToUpper(entry.letter), repl))
			}
		}
		variants.Merge(fresh)

		if variants.Len() > maxVariants*2 {
			break
		}
	}

	capped := variants.Sorted()
	if len(capped) > maxVariants*2 {
		capped = capped[:maxVariants*2]
	}
	return NewSet(capped...)
}
