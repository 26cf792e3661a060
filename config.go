// Package recache implements the content-addressed web-asset cache
// builder: given one or more search roots and an output directory, it
// discovers every asset transitively reachable from a set of entry
// files, computes content hashes for them (breaking simple two-file
// reference cycles), rewrites their references to hashed filenames,
// and emits the result into a cache directory.
package recache

import (
	"github.com/n2code/recache/internal/asset"
	"github.com/n2code/recache/internal/output"
	"github.com/n2code/recache/internal/resolver"
)

// Config configures a single Build run.
type Config struct {
	// SearchRoots are the directories enumerated for assets, in order;
	// later roots never override a logical path already claimed by an
	// earlier one (spec.md §3's first-wins rule).
	SearchRoots []string

	// OutputDir is the cache directory assets are emitted into.
	OutputDir string

	// Entries overrides asset.DefaultEntries when non-empty.
	Entries []string

	// Ignore is the Ignore Set consulted by the Reference Scanner
	// (spec.md §3/§4.2). Nil means nothing is ignored.
	Ignore *asset.IgnoreSet

	// Resolver is the Path Resolver's workload-specific policy
	// (spec.md §4.3's closing note). The zero value is substituted with
	// resolver.DefaultConfig() by Build; set it explicitly only to
	// override the fixed prefix list or sibling search root.
	Resolver resolver.Config

	// PlainHashHints lets a caller seed known plain_hash values (keyed
	// by logical path), typically loaded from the on-disk file-list
	// cache, so unchanged files are not re-read and re-hashed.
	PlainHashHints map[string]string

	// Workers bounds the concurrency of the opaque-copy path (spec.md
	// §5). Values below 1 are treated as 1.
	Workers int

	// Printer receives diagnostic output gated by output.Verbose and
	// output.Loops. The zero value discards everything.
	Printer output.Printer

	// Clock supplies the timestamp text prepended to rewritten textual
	// output (spec.md §4.5 step 5). Nil defaults to the current time
	// formatted as RFC 3339.
	Clock func() string

	// ProcessID is used as the temp-file suffix for the core Emitter's
	// atomic writes (spec.md §4.5 step 7). Empty defaults to the
	// running process's PID.
	ProcessID string
}

// Report summarizes one completed Build.
type Report struct {
	// Emitted is the number of distinct assets written to the cache.
	Emitted int

	// NotFound is the set of candidate references that could not be
	// resolved to any registered asset and contained a "/" (spec.md
	// §4.3's unresolved reporting rule).
	NotFound map[string]bool
}
