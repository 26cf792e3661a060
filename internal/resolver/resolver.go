// Package resolver implements spec.md §4.3's Path Resolver: a pure
// function from (referring asset, textual candidate) to a registered
// asset or "unresolved".
package resolver

import (
	"path"
	"strings"

	"github.com/n2code/recache/internal/asset"
)

// DefaultPrefixes is the fixed prefix list of spec.md §4.3 step 3,
// preserved here as the default configuration for bit-exact output
// against the workload this was derived from. An implementation is
// free to override it via Config.Prefixes.
var DefaultPrefixes = []string{
	"/games/sharedAssets-3js/",
	"/games/sharedAssets-3js/particles/",
	"/games/sharedAssets-3js/particles/particles128/",
	"/games/",
	"/games/libs-3js/thrax/",
	"/games/libs-3js/examples/js/",
	"/games/libs-3js/thrax/three86/",
	"/assets/",
}

// DefaultSiblingSearchRoot is the directory whose immediate child
// directories are tried as a last-resort prefix (spec.md §4.3 step 4).
const DefaultSiblingSearchRoot = "/games/sharedAssets-3js"

// Config holds the resolver's workload-specific policy (spec.md §4.3's
// closing note: "an implementation should accept it as configuration").
type Config struct {
	Prefixes           []string
	SiblingSearchRoot  string
	SiblingDirectories []string // immediate children of SiblingSearchRoot
}

// DefaultConfig returns the resolver configuration matching spec.md's
// fixed prefix list bit-exactly.
func DefaultConfig() Config {
	return Config{
		Prefixes:          DefaultPrefixes,
		SiblingSearchRoot: DefaultSiblingSearchRoot,
	}
}

// Resolve performs the ordered lookup of spec.md §4.3 and returns the
// resolved asset, or false if the candidate could not be resolved. A
// resolution equal to the referrer is suppressed as a self-reference
// (also returning false, but never recorded as not-found by the
// caller: see the notFound return).
func Resolve(reg *asset.Registry, referrer *asset.Asset, candidate string, cfg Config) (resolved *asset.Asset, notFound bool) {
	referrerDir := path.Dir(referrer.LogicalPath)

	try := func(logical string) (*asset.Asset, bool) {
		return reg.Lookup(logical)
	}

	// 1. as-is
	if hit, ok := try(candidate); ok {
		return finish(hit, referrer)
	}

	// 2. relative to the referrer's directory, supporting ./ and any
	// number of leading ../
	if isRelative(candidate) {
		joined := joinRelative(referrerDir, candidate)
		if hit, ok := try(joined); ok {
			return finish(hit, referrer)
		}
	}

	// 3. fixed prefixes, in order
	for _, prefix := range cfg.Prefixes {
		if hit, ok := try(prefix + strings.TrimPrefix(candidate, "/")); ok {
			return finish(hit, referrer)
		}
	}

	// 4. sibling directories of the fixed anchor directory
	for _, sibling := range cfg.SiblingDirectories {
		joined := path.Join(cfg.SiblingSearchRoot, sibling, candidate)
		if hit, ok := try(joined); ok {
			return finish(hit, referrer)
		}
	}

	notFound = strings.Contains(candidate, "/")
	return nil, notFound
}

func finish(hit *asset.Asset, referrer *asset.Asset) (*asset.Asset, bool) {
	if hit.LogicalPath == referrer.LogicalPath {
		return nil, false // self-reference suppressed, never reported
	}
	return hit, false
}

func isRelative(candidate string) bool {
	return strings.HasPrefix(candidate, "./") || strings.HasPrefix(candidate, "../")
}

// joinRelative resolves candidate (starting with "./" or "../", any
// number of leading "../" segments) against dir, popping one directory
// level from dir per leading "../" segment.
func joinRelative(dir, candidate string) string {
	joined := path.Join(dir, candidate)
	return joined
}
