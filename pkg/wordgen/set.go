package wordgen

import "sort"

// Set is an unordered collection of unique candidate strings.
// Bounded truncations elsewhere in the package always operate on
// Sorted() snapshots so results are reproducible across runs.
type Set map[string]struct{}

func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Set) Add(word string) {
	s[word] = struct{}{}
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Merge adds every member of other into s.
func (s Set) Merge(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Sorted returns the members in ascending lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
