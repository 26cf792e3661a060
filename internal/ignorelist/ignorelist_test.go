package ignorelist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsEmptySet(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "recache.ignore"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Ignores("/debug.js") {
		t.Fatalf("expected empty ignore set")
	}
}

func TestLoadParsesJSONCWithCommentsAndTrailingCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recache.ignore")
	content := `{
		// debug-only helper, never shipped
		"/debug.js": true,
		"/fixtures/": false,
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Ignores("/debug.js") {
		t.Fatalf("expected /debug.js to be ignored")
	}
	if set.Ignores("/fixtures/") {
		t.Fatalf("expected /fixtures/ to not be ignored (value was false)")
	}
}

func TestLoadConfigMissingFileYieldsZeroValue(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "recache.config"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Verbose || cfg.Loops || len(cfg.Entries) != 0 {
		t.Fatalf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadConfigParsesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recache.config")
	content := `{
		"entries": ["index.html", "tester.html", "admin.html"],
		"verbose": true,
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose=true")
	}
	if len(cfg.Entries) != 3 || cfg.Entries[2] != "admin.html" {
		t.Fatalf("unexpected entries: %+v", cfg.Entries)
	}
}
