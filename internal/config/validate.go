package config

import (
	"fmt"
	"strings"

	"github.com/scbundle/scb/internal/collect"
	"github.com/scbundle/scb/internal/rules"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = collect.DefaultExtensions
	}
	for _, e := range cfg.Extensions {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("config: extensions: empty entry")
		}
	}
	seen := make(map[string]bool)
	for i, r := range cfg.Rules {
		rule := rules.Rule{Pattern: r.Pattern, Active: r.Enabled()}
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("config: rules[%d]: %v", i, err)
		}
		if seen[r.Pattern] {
			return fmt.Errorf("config: rules: duplicate pattern %q", r.Pattern)
		}
		seen[r.Pattern] = true
	}
	return nil
}
