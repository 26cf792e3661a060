// Package ignorelist loads the Ignore Set (spec.md §3) and the
// file-provided defaults for the Entry Set / verbose / loops options
// (spec.md §6) from JSONC files on disk, the way the CLI's config file
// collaborator is named but left unspecified by the core.
package ignorelist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/n2code/recache/internal/asset"
)

// DefaultIgnoreFile and DefaultConfigFile are the filenames the CLI
// looks for next to the search root unless overridden by a flag.
const (
	DefaultIgnoreFile = "recache.ignore"
	DefaultConfigFile = "recache.config"
)

// Load reads path as JSONC, tolerating comments and trailing commas,
// and returns the parsed Ignore Set. A missing file yields an empty
// set rather than an error — the ignore list is optional.
func Load(path string) (*asset.IgnoreSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return asset.NewIgnoreSet(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ignore list %s: %w", path, err)
	}

	var candidates map[string]bool
	if err := json.Unmarshal(jsonc.ToJSON(data), &candidates); err != nil {
		return nil, fmt.Errorf("parsing ignore list %s: %w", path, err)
	}
	return asset.NewIgnoreSet(candidates), nil
}

// Config holds the subset of spec.md §6's recognized options that may
// be supplied as file-provided defaults, overridden by CLI flags.
type Config struct {
	Entries []string `json:"entries"`
	Verbose bool     `json:"verbose"`
	Loops   bool     `json:"loops"`
}

// LoadConfig reads path as JSONC into a Config. A missing file yields
// a zero Config, letting the caller fall back to spec.md §6's defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
