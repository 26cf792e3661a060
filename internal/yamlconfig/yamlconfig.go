// Package yamlconfig loads recache.yaml, the optional workload-specific
// settings file for the resolver's fixed prefix list, its sibling
// search root, and the default entry set (spec.md §4.3, §6), in the
// style of the bureau example's lib/config/config.go.
package yamlconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of recache.yaml.
type Config struct {
	// Entries overrides asset.DefaultEntries when non-empty.
	Entries []string `yaml:"entries"`

	// Resolver carries the Path Resolver's workload-specific policy.
	Resolver ResolverConfig `yaml:"resolver"`
}

// ResolverConfig mirrors resolver.Config's YAML-facing fields.
type ResolverConfig struct {
	// Prefixes overrides resolver.DefaultPrefixes when non-empty.
	Prefixes []string `yaml:"prefixes"`

	// SiblingSearchRoot overrides resolver.DefaultSiblingSearchRoot
	// when non-empty.
	SiblingSearchRoot string `yaml:"sibling_search_root"`
}

// Load reads and parses path. A missing file yields a zero Config, not
// an error, so recache.yaml is entirely optional.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
