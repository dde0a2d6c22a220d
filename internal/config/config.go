package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gastos-dev/gastos/internal/category"
)

// FileName is the config file written next to the expense database.
const FileName = "gastos.yaml"

// Config represents the top-level gastos.yaml configuration.
type Config struct {
	Store    StoreConfig   `yaml:"store"`
	Import   ImportConfig  `yaml:"import"`
	Keywords []KeywordRule `yaml:"keywords,omitempty"`
}

// KeywordRule adds keywords to a category on top of the built-in rules. A
// slice, not a map: registration order decides match priority for categories
// the built-ins don't know about.
type KeywordRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// StoreConfig locates the expense database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig controls CSV import defaults.
type ImportConfig struct {
	DefaultOwner string `yaml:"default_owner"`
	Dir          string `yaml:"dir"` // scanned by `gastos import` with no file argument
}

// Load reads a gastos.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(owner string) *Config {
	return &Config{
		Store:  StoreConfig{Path: "gastos.db"},
		Import: ImportConfig{DefaultOwner: owner, Dir: "import"},
	}
}

// Rules builds the category rule set: the built-in categories plus the extra
// keywords from the config, registered in config order. Config-only
// categories end up after the built-ins in match priority.
func (c *Config) Rules() *category.RuleSet {
	rules := category.NewRuleSet()
	for _, r := range c.Keywords {
		for _, kw := range r.Keywords {
			rules.RegisterKeyword(r.Category, kw)
		}
	}
	return rules
}

// AddKeyword records a keyword in the config so it survives restarts.
// Re-adding an existing keyword is a no-op, mirroring the rule set.
func (c *Config) AddKeyword(label, keyword string) {
	for i, r := range c.Keywords {
		if r.Category != label {
			continue
		}
		for _, kw := range r.Keywords {
			if kw == keyword {
				return
			}
		}
		c.Keywords[i].Keywords = append(r.Keywords, keyword)
		return
	}
	c.Keywords = append(c.Keywords, KeywordRule{Category: label, Keywords: []string{keyword}})
}
