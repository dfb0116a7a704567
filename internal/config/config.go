package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scbundle/scb/internal/collect"
	"github.com/scbundle/scb/internal/rules"
)

// DefaultFile is the config file name probed in the working directory.
const DefaultFile = "scb.yaml"

// Rule is one exclusion rule as written in scb.yaml. Rules are active
// unless explicitly disabled.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Active  *bool  `yaml:"active"`
}

// Enabled reports whether the rule is in effect.
func (r Rule) Enabled() bool {
	return r.Active == nil || *r.Active
}

type Config struct {
	Extensions []string `yaml:"extensions"`
	Rules      []Rule   `yaml:"rules"`
	Overwrite  bool     `yaml:"overwrite"`
}

// Default returns the configuration used when no scb.yaml is present.
func Default() *Config {
	return &Config{Extensions: collect.DefaultExtensions}
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FilterRules converts the configured rules to the form the codec consumes.
func (c *Config) FilterRules() []rules.Rule {
	out := make([]rules.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		out = append(out, rules.Rule{Pattern: r.Pattern, Active: r.Enabled()})
	}
	return out
}
