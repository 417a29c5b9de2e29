package wordgen

// Config holds the options for one generation run. It is constructed
// once and never mutated; every stage reads from the same record.
type Config struct {
	MutationLevel        int  `yaml:"mutation_level"`
	Leet                 bool `yaml:"leet"`
	Combinations         bool `yaml:"combinations"`
	MaxCombinationLength int  `yaml:"max_combination_length"`

	MinLength      int  `yaml:"min_length"`
	MaxLength      int  `yaml:"max_length"`
	RequireUpper   bool `yaml:"require_upper"`
	RequireLower   bool `yaml:"require_lower"`
	RequireDigit   bool `yaml:"require_digit"`
	RequireSpecial bool `yaml:"require_special"`

	SmartOrder    bool     `yaml:"smart_order"`
	Dates         bool     `yaml:"dates"`
	KeyboardWalks bool     `yaml:"keyboard_walks"`
	Patterns      []string `yaml:"patterns"`
	PatternLimit  int      `yaml:"pattern_limit"`
	StartYear     int      `yaml:"start_year"`
	EndYear       int      `yaml:"end_year"`

	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
	Company    string   `yaml:"company"`
}

// DefaultConfig returns the defaults used when a flag or config file
// does not say otherwise.
func DefaultConfig() Config {
	return Config{
		MutationLevel:        1,
		Combinations:         true,
		MaxCombinationLength: 32,
		MinLength:            1,
		MaxLength:            128,
		PatternLimit:         1000,
		StartYear:            2015,
	}
}
