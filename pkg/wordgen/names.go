package wordgen

import (
	"strconv"
	"strings"
	"time"
)

// FromNames derives candidates from first/last name pairs, optionally
// mixed with a company name. Names are lower-cased; empty entries are
// skipped.
func FromNames(firstNames, lastNames []string, company string) Set {
	candidates := NewSet()
	company = strings.ToLower(company)

	suffixes := []string{"123", strconv.Itoa(time.Now().Year()), "!", "1"}

	for _, first := range firstNames {
		first = strings.ToLower(first)
		if first == "" {
			continue
		}
		initial := first[:1]

		for _, last := range lastNames {
			last = strings.ToLower(last)
			if last == "" {
				continue
			}

			candidates.Add(first + last)
			candidates.Add(last + first)
			candidates.Add(first + "." + last)
			candidates.Add(first + "_" + last)
			candidates.Add(initial + last)
			candidates.Add(first + last[:1])

			if company != "" {
				candidates.Add(first + company)
				candidates.Add(first + "@" + company)
				candidates.Add(initial + last[:1] + company)
			}

			for _, suffix := range suffixes {
				candidates.Add(first + last + suffix)
				candidates.Add(initial + last + suffix)
			}
		}
	}

	return candidates
}
