package aoc

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every day.
type Config struct {
	// InputDir is where puzzle inputs named <day>.input are looked up.
	// Days without a file read standard input.
	InputDir string `yaml:"input_dir"`

	Debug bool `yaml:"debug"`

	Search SearchConfig `yaml:"search"`
}

// SearchConfig bounds the best-first searches.
type SearchConfig struct {
	// MaxNodes caps the number of expanded states per search; 0 disables
	// the cap.
	MaxNodes int `yaml:"max_nodes" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		InputDir: "inputs",
		Search: SearchConfig{
			MaxNodes: 5_000_000,
		},
	}
}

var configValidate = validator.New()

// Validate checks the config values.
func (c Config) Validate() error {
	return configValidate.Struct(c)
}

// LoadConfig loads configuration with priority: env > file > defaults.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var envOverrides = map[string]func(*Config, string) error{
	"AOC21_INPUT_DIR": func(c *Config, v string) error {
		c.InputDir = v
		return nil
	},
	"AOC21_DEBUG": func(c *Config, v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	},
	"AOC21_SEARCH_MAX_NODES": func(c *Config, v string) (err error) {
		c.Search.MaxNodes, err = strconv.Atoi(v)
		return err
	},
}

func loadConfigFromEnv(cfg *Config) error {
	keys := maps.Keys(envOverrides)
	slices.Sort(keys)
	for _, k := range keys {
		v, ok := os.LookupEnv(k)
		if !ok || v == "" {
			continue
		}
		if err := envOverrides[k](cfg, v); err != nil {
			return fmt.Errorf("%s=%q: %w", k, v, err)
		}
	}
	return nil
}
