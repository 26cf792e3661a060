package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/n2code/recache/cmd/recache/flags"
	"github.com/n2code/recache/internal/ignorelist"
)

// cliRequest is everything parsed from flags and the optional config
// files, merged the way spec.md §6 describes: flags take precedence
// over file-provided defaults.
type cliRequest struct {
	searchRoots []string
	outputDir   string
	entries     []string
	verbose     bool
	loops       bool
	thorough    bool
	workers     int
	configPath  string
	ignorePath  string
	yamlPath    string

	// entriesSet/verboseSet/loopsSet record whether the corresponding
	// flag was explicitly given, so main can let it override a
	// file-provided default rather than the reverse (spec.md §6: "the
	// CLI's flags override file-provided defaults").
	entriesSet bool
	verboseSet bool
	loopsSet   bool
}

func parseFlags(args []string, out io.Writer) (*cliRequest, error) {
	flagSet := pflag.NewFlagSet("recache", pflag.ContinueOnError)
	flagSet.SetOutput(out)

	var roots, entries []string
	var outDir, configPath, ignorePath string
	var verbose, loops, thorough bool
	var workers int
	var help bool

	flagSet.StringArrayVar(&roots, flags.Root, nil, "search root directory (repeatable; at least one required)")
	flagSet.StringSliceVar(&entries, flags.Entries, nil, "entry file logical paths (default: index.html, tester.html)")
	flagSet.BoolVar(&verbose, flags.Verbose, false, "print every emitted asset as it is processed")
	flagSet.BoolVar(&loops, flags.Loops, false, "print cycle-detected / multi-cycle diagnostics")
	flagSet.BoolVar(&thorough, flags.Thorough, false, "bypass the file-list cache, re-hash every file from disk")
	flagSet.StringVar(&outDir, flags.Out, "", "output cache directory (required)")
	flagSet.StringVar(&configPath, flags.Config, "", "path to recache.config / recache.yaml (default: first root's recache.config and recache.yaml)")
	flagSet.StringVar(&ignorePath, flags.Ignore, "", "path to recache.ignore (default: first root's recache.ignore)")
	flagSet.IntVar(&workers, flags.Workers, 4, "worker pool size for the opaque-copy path")
	flagSet.BoolVarP(&help, flags.Help, "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if help {
		fmt.Fprintf(out, "Usage: recache --out DIR --root ROOT [--root ROOT...]\n\n")
		flagSet.PrintDefaults()
		return nil, pflag.ErrHelp
	}

	roots = append(roots, flagSet.Args()...)
	if len(roots) == 0 {
		return nil, fmt.Errorf("at least one --%s is required", flags.Root)
	}
	if outDir == "" {
		return nil, fmt.Errorf("--%s is required", flags.Out)
	}

	yamlPath := configPath
	if yamlPath == "" {
		yamlPath = filepath.Join(roots[0], flags.DefaultYAMLConfig)
	}
	if configPath == "" {
		configPath = filepath.Join(roots[0], ignorelist.DefaultConfigFile)
	}
	if ignorePath == "" {
		ignorePath = filepath.Join(roots[0], ignorelist.DefaultIgnoreFile)
	}

	return &cliRequest{
		searchRoots: roots,
		outputDir:   outDir,
		entries:     entries,
		verbose:     verbose,
		loops:       loops,
		thorough:    thorough,
		workers:     workers,
		configPath:  configPath,
		ignorePath:  ignorePath,
		yamlPath:    yamlPath,
		entriesSet:  flagSet.Changed(flags.Entries),
		verboseSet:  flagSet.Changed(flags.Verbose),
		loopsSet:    flagSet.Changed(flags.Loops),
	}, nil
}
