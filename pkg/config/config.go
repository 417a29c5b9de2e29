package config

import (
	"os"

	"github.com/getpassgen/passgen/pkg/wordgen"
	"gopkg.in/yaml.v3"
)

// Config represents the passgen defaults file
type Config struct {
	Generation wordgen.Config `yaml:"generation"`
	Database   Database       `yaml:"database"`
}

type Database struct {
	Path string `yaml:"path"`
}

// Load reads config from a file. A missing file yields the built-in
// defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{Generation: wordgen.DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
