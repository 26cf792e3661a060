package recache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/n2code/recache/internal/asset"
	"github.com/n2code/recache/internal/emit"
	"github.com/n2code/recache/internal/enumerate"
	"github.com/n2code/recache/internal/orchestrator"
	"github.com/n2code/recache/internal/output"
	"github.com/n2code/recache/internal/resolver"
)

// notFoundReportFile is the fixed filename spec.md §1/§6 names for the
// not-found report, always written relative to Config.OutputDir.
const notFoundReportFile = "recache.notfound"

// Build runs one complete pass of the cache builder: enumerate the
// search roots, descend from the entry set through the reference
// graph, rewrite and emit every reachable asset, then write the
// not-found report. It returns a *BuildError on any failure.
func Build(cfg Config) (*Report, error) {
	if len(cfg.SearchRoots) == 0 {
		return nil, newBuildError("build failed", fmt.Errorf("no search roots configured"))
	}
	if cfg.OutputDir == "" {
		return nil, newBuildError("build failed", fmt.Errorf("no output directory configured"))
	}

	enumerated, err := enumerate.Enumerate(cfg.SearchRoots)
	if err != nil {
		return nil, newBuildError("enumerating search roots", err)
	}

	resolverCfg := cfg.Resolver
	if len(resolverCfg.Prefixes) == 0 && resolverCfg.SiblingSearchRoot == "" {
		resolverCfg = resolver.DefaultConfig()
	}
	if len(resolverCfg.SiblingDirectories) == 0 && resolverCfg.SiblingSearchRoot != "" {
		resolverCfg.SiblingDirectories = enumerated.DirChildren[resolverCfg.SiblingSearchRoot]
	}

	entries := cfg.Entries
	if len(entries) == 0 {
		entries = asset.DefaultEntries
	}
	entrySet := asset.NewEntrySet(entries)

	ignore := cfg.Ignore
	if ignore == nil {
		ignore = asset.NewIgnoreSet(nil)
	}

	processID := cfg.ProcessID
	if processID == "" {
		processID = strconv.Itoa(os.Getpid())
	}
	emitter := emit.New(cfg.OutputDir, processID)

	clock := cfg.Clock
	if clock == nil {
		clock = func() string { return time.Now().UTC().Format(time.RFC3339) }
	}

	printer := cfg.Printer
	log := orchestrator.Logger{
		Verbose: func(format string, args ...interface{}) { printer.Out(output.Verbose, format, args...) },
		Loops:   func(format string, args ...interface{}) { printer.Out(output.Loops, format, args...) },
	}

	orch := orchestrator.New(enumerated.Registry, entrySet, ignore, resolverCfg, emitter, clock, log)
	if cfg.PlainHashHints != nil {
		orch.SetPlainHashHints(cfg.PlainHashHints)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	report, err := orch.Run(workers)
	if err != nil {
		return nil, newBuildError("build failed", err)
	}

	if err := writeNotFoundReport(cfg.OutputDir, report.NotFound); err != nil {
		return nil, newBuildError("writing not-found report", err)
	}

	return &Report{Emitted: report.Emitted, NotFound: report.NotFound}, nil
}

func writeNotFoundReport(outputDir string, notFound map[string]bool) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(notFound, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding not-found report: %w", err)
	}
	return os.WriteFile(filepath.Join(outputDir, notFoundReportFile), data, 0o644)
}
