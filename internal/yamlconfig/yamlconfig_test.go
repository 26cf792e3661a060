package yamlconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileYieldsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "recache.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Fatalf("expected zero Config, got %+v", cfg)
	}
}

func TestLoadParsesEntriesAndResolver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recache.yaml")
	body := []byte(`
entries:
  - index.html
  - tester.html
resolver:
  prefixes:
    - /assets/
    - /games/
  sibling_search_root: /games/sharedAssets-3js
`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Entries) != 2 || cfg.Entries[0] != "index.html" {
		t.Fatalf("unexpected entries: %v", cfg.Entries)
	}
	if len(cfg.Resolver.Prefixes) != 2 || cfg.Resolver.Prefixes[1] != "/games/" {
		t.Fatalf("unexpected prefixes: %v", cfg.Resolver.Prefixes)
	}
	if cfg.Resolver.SiblingSearchRoot != "/games/sharedAssets-3js" {
		t.Fatalf("unexpected sibling search root: %q", cfg.Resolver.SiblingSearchRoot)
	}
}
