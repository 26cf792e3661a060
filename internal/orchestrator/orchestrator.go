// Package orchestrator implements spec.md §4.5's Dependency
// Orchestrator together with the Rewrite Engine of §4.4, which it is
// mutually recursive with and so is kept in the same package, the way
// the teacher keeps its library's status-check, persistence, and
// serialization logic together in one package around one shared
// struct.
package orchestrator

import (
	"fmt"
	"os"

	"github.com/n2code/recache/internal/asset"
	"github.com/n2code/recache/internal/emit"
	"github.com/n2code/recache/internal/hash"
	"github.com/n2code/recache/internal/resolver"
)

// Logger receives optional diagnostic output. Verbose is gated by the
// config's verbose flag, Loops by its loops flag (spec.md §6).
type Logger struct {
	Verbose func(format string, args ...interface{})
	Loops   func(format string, args ...interface{})
}

func (l Logger) verbose(format string, args ...interface{}) {
	if l.Verbose != nil {
		l.Verbose(format, args...)
	}
}

func (l Logger) loops(format string, args ...interface{}) {
	if l.Loops != nil {
		l.Loops(format, args...)
	}
}

// Orchestrator drives the recursive descent from entry points through
// the reference graph for exactly one run.
type Orchestrator struct {
	registry     *asset.Registry
	entries      *asset.EntrySet
	ignore       *asset.IgnoreSet
	resolverCfg  resolver.Config
	emitter      *emit.Emitter
	clock        func() string
	log          Logger
	state        *processingState
	copyQueue    []copyJob
	readFile     func(path string) ([]byte, error)
	hints        map[string]string // logical path -> known plain_hash, from the file-list cache
}

// SetPlainHashHints supplies previously-cached plain_hash values
// (keyed by logical path) from the on-disk file-list cache, letting
// the Orchestrator skip re-reading and re-hashing files the cache
// says are unchanged. It must be called before Run, and has no effect
// on any other part of the algorithm or its output (spec.md §8's
// determinism invariant covers the final hashes, not how plain_hash
// was obtained).
func (o *Orchestrator) SetPlainHashHints(hints map[string]string) {
	o.hints = hints
}

func (o *Orchestrator) plainHashOf(path, originalPath string) (string, error) {
	if h, ok := o.hints[path]; ok {
		return h, nil
	}
	content, err := o.readFile(originalPath)
	if err != nil {
		return "", fmt.Errorf("read_error: %s: %w", originalPath, err)
	}
	return hash.Short(content), nil
}

// New builds an Orchestrator for a single run. clock supplies the
// timestamp text prepended to textual output (spec.md §4.5 step 5);
// pin it to a fixed string in tests for reproducible output.
func New(registry *asset.Registry, entries *asset.EntrySet, ignore *asset.IgnoreSet, resolverCfg resolver.Config, emitter *emit.Emitter, clock func() string, log Logger) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		entries:     entries,
		ignore:      ignore,
		resolverCfg: resolverCfg,
		emitter:     emitter,
		clock:       clock,
		log:         log,
		state:       newProcessingState(),
		readFile:    os.ReadFile,
	}
}

// Report summarizes one completed run.
type Report struct {
	Emitted  int
	NotFound map[string]bool
}

// Run executes the bootstrap loop of spec.md §4.5 over every entry, in
// order, then flushes any deferred opaque-asset copies.
func (o *Orchestrator) Run(workers int) (*Report, error) {
	for _, entryPath := range o.entries.Paths() {
		a, ok := o.registry.Lookup(entryPath)
		if !ok {
			continue // an undeclared default entry (e.g. tester.html) is simply absent
		}
		outcome, _, err := o.process(a, false)
		if err != nil {
			return nil, err
		}
		if outcome != Done {
			return nil, fmt.Errorf("multi_cycle: entry %q did not complete (outcome=%s); mutually cyclic dependency among three or more files is not supported", entryPath, outcome)
		}
	}

	if err := o.flushCopies(workers); err != nil {
		return nil, err
	}

	return &Report{Emitted: len(o.state.done), NotFound: o.state.notFound}, nil
}

// process implements spec.md §4.5 steps 1–4 and 8; steps 5–7 are
// delegated to processTextual/processOpaque.
//
// The second return value, isCycle, is true only when this exact call
// hit step 2's literal "asset is its own caller's ancestor" check. A
// Pending outcome with isCycle false instead comes from a dependency
// that deferred for an ancestor further up the stack (see rewriteLine):
// that dependency's special_hash or plain_hash is already available,
// so the caller can use it and complete normally rather than deferring
// itself — only the literal cycle party must come back later.
func (o *Orchestrator) process(a *asset.Asset, pendingOk bool) (Outcome, bool, error) {
	path := a.LogicalPath

	// 1. Entry guard
	if len(o.state.inProgress) > 0 && o.entries.Contains(path) {
		return Entry, false, nil
	}

	// 2. Cycle detection
	if o.state.inProgress[path] {
		if _, known := o.state.plainHash[path]; !known {
			h, err := o.plainHashOf(path, a.OriginalPath)
			if err != nil {
				return Done, false, err
			}
			o.state.plainHash[path] = h
		}
		o.log.loops("cycle detected at %s, deferring", path)
		return Pending, true, nil
	}

	// 3. Idempotence
	if o.state.done[path] {
		return Done, false, nil
	}

	// 4. Mark in progress
	o.state.inProgress[path] = true

	var merkle string
	var completed bool
	var err error
	if a.IsTextual {
		merkle, completed, err = o.processTextual(a, pendingOk)
	} else {
		merkle, err = o.processOpaque(a)
		completed = true
	}
	if err != nil {
		return Done, false, err
	}

	if !completed {
		if pendingOk {
			return Done, false, fmt.Errorf("multi_cycle: %s deferred again on reprocessing; mutually cyclic dependency among three or more files is not supported", path)
		}
		return Pending, false, nil
	}

	o.state.merkleHash[path] = merkle
	a.MerkleHash = merkle
	a.PlainHash = o.state.plainHash[path]
	delete(o.state.inProgress, path)
	o.state.done[path] = true
	o.log.verbose("emitted %s (%s)", path, merkle)

	// 8. Drain pending[path]
	queue := o.state.pending[path]
	delete(o.state.pending, path)
	for _, depPath := range queue {
		delete(o.state.invPending, depPath)
		delete(o.state.inProgress, depPath)
		delete(o.state.done, depPath)
		depAsset, ok := o.registry.Lookup(depPath)
		if !ok {
			continue
		}
		if _, _, err := o.process(depAsset, true); err != nil {
			return Done, false, err
		}
	}

	return Done, false, nil
}
