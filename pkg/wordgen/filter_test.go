package wordgen

import (
	"reflect"
	"testing"
)

func TestFilter_Requirements(t *testing.T) {
	candidates := NewSet("abc", "abc1", "abc1!", "ABC1!")

	cfg := DefaultConfig()
	cfg.RequireDigit = true
	cfg.RequireSpecial = true

	got := Filter(candidates, cfg)
	want := NewSet("abc1!", "ABC1!")

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got.Sorted(), want.Sorted())
	}
}

func TestFilter_LengthWindow(t *testing.T) {
	candidates := NewSet("ab", "abcd", "abcdefgh")

	cfg := DefaultConfig()
	cfg.MinLength = 3
	cfg.MaxLength = 6

	got := Filter(candidates, cfg)
	if got.Len() != 1 || !got.Contains("abcd") {
		t.Errorf("Filter = %v, want only abcd", got.Sorted())
	}
}

func TestFilter_ConjunctiveClasses(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Config)
		want []string
	}{
		{
			name: "upper only",
			cfg:  func(c *Config) { c.RequireUpper = true },
			want: []string{"ABC1!", "Pass"},
		},
		{
			name: "upper and lower",
			cfg: func(c *Config) {
				c.RequireUpper = true
				c.RequireLower = true
			},
			want: []string{"Pass"},
		},
		{
			name: "no requirements",
			cfg:  func(c *Config) {},
			want: []string{"ABC1!", "Pass", "abc1"},
		},
	}

	candidates := NewSet("abc1", "ABC1!", "Pass")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.cfg(&cfg)
			got := Filter(candidates, cfg).Sorted()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_LengthCountsRunes(t *testing.T) {
	// "pässwörd" is 8 characters but 10 bytes.
	cfg := DefaultConfig()
	cfg.MinLength = 8
	cfg.MaxLength = 8

	got := Filter(NewSet("pässwörd", "kurz"), cfg)
	if got.Len() != 1 || !got.Contains("pässwörd") {
		t.Errorf("Filter = %v, want only the 8-rune candidate", got.Sorted())
	}
}

func TestFilter_Idempotent(t *testing.T) {
	candidates := NewSet("abc", "abc1", "abc1!", "ABC1!", "x")

	cfg := DefaultConfig()
	cfg.MinLength = 2
	cfg.RequireDigit = true

	once := Filter(candidates, cfg)
	twice := Filter(once, cfg)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter not idempotent: %v vs %v", once.Sorted(), twice.Sorted())
	}
}

func TestFilter_InvalidWindowYieldsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLength = 10
	cfg.MaxLength = 5

	got := Filter(NewSet("abcdefg", "short"), cfg)
	if got.Len() != 0 {
		t.Errorf("inconsistent window kept %v", got.Sorted())
	}
}
