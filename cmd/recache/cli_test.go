package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/n2code/recache/cmd/recache/flags"
	"github.com/n2code/recache/internal/ignorelist"
)

func TestParseFlagsRequiresSearchRootAndOutputDir(t *testing.T) {
	var out bytes.Buffer
	if _, err := parseFlags([]string{"--out", "/tmp/x"}, &out); err == nil {
		t.Fatalf("expected error for missing search root")
	}
	if _, err := parseFlags([]string{"site/"}, &out); err == nil {
		t.Fatalf("expected error for missing --out")
	}
}

func TestParseFlagsDefaultsAndPrecedenceFlags(t *testing.T) {
	var out bytes.Buffer
	req, err := parseFlags([]string{"--out", "/tmp/cache", "site/"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.outputDir != "/tmp/cache" {
		t.Fatalf("unexpected outputDir: %q", req.outputDir)
	}
	if len(req.searchRoots) != 1 || req.searchRoots[0] != "site/" {
		t.Fatalf("unexpected searchRoots: %v", req.searchRoots)
	}
	if req.entriesSet || req.verboseSet || req.loopsSet {
		t.Fatalf("expected no flags marked explicit when not given")
	}
	if req.configPath != filepath.Join("site/", ignorelist.DefaultConfigFile) {
		t.Fatalf("unexpected default configPath: %q", req.configPath)
	}
	if req.ignorePath != filepath.Join("site/", ignorelist.DefaultIgnoreFile) {
		t.Fatalf("unexpected default ignorePath: %q", req.ignorePath)
	}
	if req.yamlPath != filepath.Join("site/", flags.DefaultYAMLConfig) {
		t.Fatalf("unexpected default yamlPath: %q", req.yamlPath)
	}
}

func TestParseFlagsExplicitEntriesMarksSet(t *testing.T) {
	var out bytes.Buffer
	req, err := parseFlags([]string{"--out", "/tmp/cache", "--entries", "index.html,other.html", "site/"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.entriesSet {
		t.Fatalf("expected entriesSet to be true")
	}
	if len(req.entries) != 2 || req.entries[1] != "other.html" {
		t.Fatalf("unexpected entries: %v", req.entries)
	}
}

func TestParseFlagsHelpReturnsErrHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"--help"}, &out)
	if err != pflag.ErrHelp {
		t.Fatalf("expected pflag.ErrHelp signaling help was requested, got %v", err)
	}
}
