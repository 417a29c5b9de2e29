package wordgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// specialChars is the punctuation set recognized by RequireSpecial.
const specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Filter keeps candidates whose length falls inside the configured
// window and which satisfy every enabled character-class requirement.
// A window with MinLength > MaxLength keeps nothing; that is the
// filter's quiet answer to an inconsistent config, not an error.
func Filter(candidates Set, cfg Config) Set {
	kept := NewSet()

	for candidate := range candidates {
		// Length is counted in runes so non-ASCII seeds filter the
		// same as their character count suggests.
		n := utf8.RuneCountInString(candidate)
		if n < cfg.MinLength || n > cfg.MaxLength {
			continue
		}
		if cfg.RequireUpper && !containsFunc(candidate, unicode.IsUpper) {
			continue
		}
		if cfg.RequireLower && !containsFunc(candidate, unicode.IsLower) {
			continue
		}
		if cfg.RequireDigit && !containsFunc(candidate, unicode.IsDigit) {
			continue
		}
		if cfg.RequireSpecial && !strings.ContainsAny(candidate, specialChars) {
			continue
		}
		kept.Add(candidate)
	}

	return kept
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}
