package wordgen

// Word-count bounds for combination generation. Pairs grow
// quadratically and triples cubically, hence the tighter triple bound.
const (
	maxPairWords   = 30
	maxTripleWords = 10
)

// Combinations produces concatenative pair and triple combinations of
// the given words, skipping any result longer than maxLength. Fewer
// than two words yields an empty set.
func Combinations(words []string, maxLength int) Set {
	combos := NewSet()

	if len(words) > maxPairWords {
		words = words[:maxPairWords]
	}

	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			w1, w2 := words[i], words[j]
			if len(w1)+len(w2) > maxLength {
				continue
			}
			combos.Add(w1 + w2)
			combos.Add(w2 + w1)
			combos.Add(capitalize(w1) + capitalize(w2))
			combos.Add(w1 + "_" + w2)
			combos.Add(w1 + "." + w2)
			combos.Add(w1 + "-" + w2)
		}
	}

	if len(words) >= 3 {
		triples := words
		if len(triples) > maxTripleWords {
			triples = triples[:maxTripleWords]
		}
		for i := 0; i < len(triples); i++ {
			for j := i + 1; j < len(triples); j++ {
				for k := j + 1; k < len(triples); k++ {
					w1, w2, w3 := triples[i], triples[j], triples[k]
					if len(w1)+len(w2)+len(w3) > maxLength {
						continue
					}
					combos.Add(w1 + w2 + w3)
					combos.Add(capitalize(w1) + capitalize(w2) + capitalize(w3))
				}
			}
		}
	}

	return combos
}
