package wordgen

// DefaultPatternLimit bounds how many strings a single mask may expand to.
const DefaultPatternLimit = 1000

// classWidth caps the branching factor at each wildcard position: only
// the first classWidth members of a character class are tried, so a
// mask reaches a fixed prefix of each class, never the full product.
const classWidth = 5

// patternClasses maps mask wildcards to their character classes. Any
// character outside this table is a literal; there is no escaping.
var patternClasses = map[byte]string{
	'@': "abcdefghijklmnopqrstuvwxyz",
	',': "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	'%': "0123456789",
	'^': "!@#$%^&*",
	'?': "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
	'd': "0123456789",
	'l': "abcdefghijklmnopqrstuvwxyz",
	'u': "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	's': "!@#$%^&*()_+-=",
}

// ExpandPattern expands a mask into concrete strings by depth-first
// traversal, stopping as soon as limit results exist. An empty mask
// expands to the empty string; a zero limit yields nothing.
func ExpandPattern(pattern string, limit int) Set {
	results := NewSet()
	expandMask(pattern, "", limit, results)
	return results
}

func expandMask(pattern, prefix string, limit int, results Set) {
	if results.Len() >= limit {
		return
	}
	if pattern == "" {
		results.Add(prefix)
		return
	}

	c := pattern[0]
	rest := pattern[1:]

	class, ok := patternClasses[c]
	if !ok {
		expandMask(rest, prefix+string(c), limit, results)
		return
	}

	if len(class) > classWidth {
		class = class[:classWidth]
	}
	for i := 0; i < len(class); i++ {
		if results.Len() >= limit {
			return
		}
		expandMask(rest, prefix+string(class[i]), limit, results)
	}
}
