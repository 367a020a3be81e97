// Package config handles configuration loading and validation for tasks.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tasks/internal/model"
)

// Id strategies.
const (
	IDStrategySequence = "sequence"
	IDStrategyRandom   = "random"
)

var themes = []string{"classic", "neon", "mono"}

// Config holds the application configuration.
type Config struct {
	StoreName string     `yaml:"store_name"`
	SeedFile  string     `yaml:"seed_file"`
	IDs       IDConfig   `yaml:"ids"`
	List      ListConfig `yaml:"list"`
	Theme     string     `yaml:"theme"`
}

// IDConfig selects how ids are generated for records added without one.
type IDConfig struct {
	Strategy    string `yaml:"strategy"`     // sequence | random
	RandomLimit int    `yaml:"random_limit"` // exclusive upper bound for random ids
	RandomSeed  uint64 `yaml:"random_seed"`  // 0 picks a seed at startup
}

// ListConfig holds listing defaults.
type ListConfig struct {
	Filter string `yaml:"filter"` // incomplete | all
	Group  bool   `yaml:"group"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StoreName: "Tasks",
		IDs: IDConfig{
			Strategy:    IDStrategySequence,
			RandomLimit: 1000,
		},
		List: ListConfig{
			Filter: model.FilterIncomplete.String(),
		},
		Theme: "classic",
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasks", "config.yaml")
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.StoreName) == "" {
		c.StoreName = defaults.StoreName
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = defaults.IDs.Strategy
	}
	if c.IDs.RandomLimit == 0 {
		c.IDs.RandomLimit = defaults.IDs.RandomLimit
	}
	if c.List.Filter == "" {
		c.List.Filter = defaults.List.Filter
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("ids.strategy", c.IDs.Strategy, oneOf(IDStrategySequence, IDStrategyRandom)),
		criterio.Run("ids.random_limit", c.IDs.RandomLimit, positive),
		criterio.Run("list.filter", c.List.Filter, validFilter),
		criterio.Run("theme", c.Theme, oneOf(themes...)),
	)
}

// Filter returns the parsed default listing filter.
func (c *Config) Filter() model.Filter {
	f, _ := model.ParseFilter(c.List.Filter)
	return f
}

func oneOf(allowed ...string) func(string) error {
	return func(v string) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of %s, got %q", strings.Join(allowed, ", "), v)
	}
}

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func validFilter(s string) error {
	_, err := model.ParseFilter(s)
	return err
}
