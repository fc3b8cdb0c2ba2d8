// Package config loads settings for the calc command from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// Config holds the settings of the calc command.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// Lenient accepts expressions that leave extra values on the stack.
	Lenient bool `toml:"lenient" yaml:"lenient"`
	// Explain prints detailed errors instead of the error marker.
	Explain bool `toml:"explain" yaml:"explain"`
	// Verbose logs the output of each stage.
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// EnvVar names the environment variable holding the config file path.
const EnvVar = "CALC_CONFIG"

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

// Load loads configuration from a file. Files ending in .yaml or .yml are
// YAML; anything else is TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		_, err = toml.Decode(string(b), &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the file named by CALC_CONFIG, or else
// from the first default location that exists. With neither, it returns
// Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		"./calc.toml",
		"./calc.yaml",
		filepath.Join(home, ".config/calc/config.toml"),
		filepath.Join(home, ".config/calc/config.yaml"),
	}
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "%g"
	}
}

// Validate checks that the result format has a verb.
func (c *Config) Validate() error {
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	return nil
}

// Options returns the evaluation options the configuration selects.
func (c *Config) Options() []calculator.Option {
	if c.Lenient {
		return []calculator.Option{calculator.Lenient()}
	}
	return []calculator.Option{calculator.Strict()}
}
