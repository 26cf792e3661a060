// Command recache builds a content-addressed cache of the web assets
// transitively reachable from a set of entry files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/n2code/recache"
	"github.com/n2code/recache/cmd/recache/flags"
	"github.com/n2code/recache/internal/filelist"
	"github.com/n2code/recache/internal/ignorelist"
	"github.com/n2code/recache/internal/output"
	"github.com/n2code/recache/internal/resolver"
	"github.com/n2code/recache/internal/yamlconfig"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "recache: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut *os.File) error {
	request, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	fileConfig, err := ignorelist.LoadConfig(request.configPath)
	if err != nil {
		return err
	}
	yamlCfg, err := yamlconfig.Load(request.yamlPath)
	if err != nil {
		return err
	}
	ignoreSet, err := ignorelist.Load(request.ignorePath)
	if err != nil {
		return err
	}

	entries := request.entries
	if !request.entriesSet {
		switch {
		case len(fileConfig.Entries) > 0:
			entries = fileConfig.Entries
		case len(yamlCfg.Entries) > 0:
			entries = yamlCfg.Entries
		}
	}
	verbose := request.verbose || (!request.verboseSet && fileConfig.Verbose)
	loops := request.loops || (!request.loopsSet && fileConfig.Loops)

	include := []output.Class{output.Normal}
	if verbose {
		include = append(include, output.Verbose)
	}
	if loops {
		include = append(include, output.Loops)
	}
	printer := output.NewPrinter(include, out, errOut)

	resolverCfg := resolver.DefaultConfig()
	if len(yamlCfg.Resolver.Prefixes) > 0 {
		resolverCfg.Prefixes = yamlCfg.Resolver.Prefixes
	}
	if yamlCfg.Resolver.SiblingSearchRoot != "" {
		resolverCfg.SiblingSearchRoot = yamlCfg.Resolver.SiblingSearchRoot
	}

	if err := os.MkdirAll(request.outputDir, 0o755); err != nil {
		return err
	}
	fileListPath := filepath.Join(request.outputDir, flags.DefaultFileList)
	cache, err := filelist.Load(fileListPath)
	if err != nil {
		return err
	}
	hints := map[string]string{}
	if !request.thorough {
		collectHints(request.searchRoots, cache, hints)
	}

	if !request.thorough {
		if err := cache.Save(fileListPath); err != nil {
			return err
		}
	}

	report, err := recache.Build(recache.Config{
		SearchRoots:    request.searchRoots,
		OutputDir:      request.outputDir,
		Entries:        entries,
		Ignore:         ignoreSet,
		Resolver:       resolverCfg,
		PlainHashHints: hints,
		Workers:        request.workers,
		Printer:        printer,
	})
	if err != nil {
		return err
	}

	printer.Out(output.Normal, "emitted %s assets to %s", humanize.Comma(int64(report.Emitted)), request.outputDir)
	if len(report.NotFound) > 0 {
		printer.Out(output.Normal, ", %s unresolved reference(s) (see recache.notfound)", humanize.Comma(int64(len(report.NotFound))))
	}
	printer.Out(output.Normal, "\n")

	// An interactive terminal gets the tree even without --verbose, the
	// same way the teacher's CLI only bothers with its richer tree
	// output when someone is actually watching.
	if verbose || output.IsInteractiveTerminal() {
		tree := output.NewVisualFileTree(request.outputDir)
		if err := walkAndInsert(request.outputDir, report.NotFound, tree); err == nil {
			printer.Out(output.Normal, "%s\n", tree.Render())
		}
	}

	return nil
}
