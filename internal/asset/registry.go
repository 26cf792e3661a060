package asset

import "strings"

// Registry is the File Registry of spec.md §3: a mapping from logical
// path to Asset, read-only from the core's point of view once the
// enumerator has finished registering files.
type Registry struct {
	byLogicalPath map[string]*Asset
	order         []*Asset // registration order, for deterministic iteration
}

// NewRegistry returns an empty registry ready for registration.
func NewRegistry() *Registry {
	return &Registry{byLogicalPath: make(map[string]*Asset)}
}

// Register enters a under both "p/q" and "/p/q". The first registration
// of a given key wins; later attempts to register the same key are
// silently ignored, per spec.md §3 ("Keys are unique after first-wins
// insertion").
func (r *Registry) Register(a *Asset) {
	logical := a.LogicalPath
	withoutSlash := strings.TrimPrefix(logical, "/")
	withSlash := "/" + withoutSlash

	_, hasBare := r.byLogicalPath[withoutSlash]
	_, hasRooted := r.byLogicalPath[withSlash]
	if hasBare && hasRooted {
		return
	}

	if !hasBare {
		r.byLogicalPath[withoutSlash] = a
	}
	if !hasRooted {
		r.byLogicalPath[withSlash] = a
	}
	r.order = append(r.order, a)
}

// Lookup returns the asset registered under the given logical path,
// trying the path exactly as given.
func (r *Registry) Lookup(logicalPath string) (*Asset, bool) {
	a, ok := r.byLogicalPath[logicalPath]
	return a, ok
}

// All iterates every distinct asset in registration order.
func (r *Registry) All() []*Asset {
	return r.order
}

// Count returns the number of distinct registered assets.
func (r *Registry) Count() int {
	return len(r.order)
}

// EntrySet is the ordered list of logical paths designated as entry
// points (spec.md §3). Entries keep their original filename in the
// output and are never descended into mid-recursion.
type EntrySet struct {
	paths []string
	index map[string]bool
}

// DefaultEntries is the default Entry Set per spec.md §6.
var DefaultEntries = []string{"index.html", "tester.html"}

// NewEntrySet builds an EntrySet from an ordered list of logical paths.
func NewEntrySet(paths []string) *EntrySet {
	index := make(map[string]bool, len(paths))
	for _, p := range paths {
		index[normalizeEntryPath(p)] = true
	}
	return &EntrySet{paths: paths, index: index}
}

func normalizeEntryPath(p string) string {
	return strings.TrimPrefix(p, "/")
}

// Contains reports whether logicalPath (in either "p/q" or "/p/q"
// form) names an entry point.
func (e *EntrySet) Contains(logicalPath string) bool {
	return e.index[normalizeEntryPath(logicalPath)]
}

// Paths returns the entry set in the order it was declared, used to
// drive the bootstrap loop of spec.md §4.5.
func (e *EntrySet) Paths() []string {
	return e.paths
}

// IgnoreSet is the set of candidate strings the Scanner must treat as
// unresolved, silently, per spec.md §3/§4.2.
type IgnoreSet struct {
	candidates map[string]bool
}

// NewIgnoreSet builds an IgnoreSet from a set of candidate strings.
func NewIgnoreSet(candidates map[string]bool) *IgnoreSet {
	if candidates == nil {
		candidates = map[string]bool{}
	}
	return &IgnoreSet{candidates: candidates}
}

// Ignores reports whether candidate must be suppressed.
func (s *IgnoreSet) Ignores(candidate string) bool {
	return s.candidates[candidate]
}
