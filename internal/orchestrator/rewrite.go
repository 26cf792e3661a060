package orchestrator

import (
	"strings"

	"github.com/n2code/recache/internal/asset"
	"github.com/n2code/recache/internal/resolver"
	"github.com/n2code/recache/internal/scanner"
)

// rewriteLine implements spec.md §4.4: scan line for candidates, ask
// the Resolver, ask the Orchestrator to process each dependency, and
// substitute resolved spans with the target's hashed output path (or
// its original path, for an entry point).
//
// depPending reports whether any dependency returned Pending, signaling
// the caller (processTextual) to set come_back_later.
func (o *Orchestrator) rewriteLine(referrer *asset.Asset, line string) (rewritten string, depPending bool, err error) {
	candidates, drop := scanner.ScanLine(line, o.ignore)
	if drop {
		return "", false, nil
	}
	if len(candidates) == 0 {
		return line, false, nil
	}

	var out strings.Builder
	last := 0

	for _, c := range candidates {
		resolved, notFound := resolver.Resolve(o.registry, referrer, c.Text, o.resolverCfg)
		if resolved == nil {
			if notFound {
				o.state.notFound[c.Text] = true
			}
			continue // leave span untouched
		}

		var replacement string
		if o.entries.Contains(resolved.LogicalPath) {
			replacement = ensureLeadingSlash(resolved.LogicalPath)
		} else {
			outcome, isCycle, perr := o.process(resolved, false)
			if perr != nil {
				return "", false, perr
			}
			switch outcome {
			case Done:
				replacement = hashedReference(resolved, o.state.merkleHash[resolved.LogicalPath])
			case Pending:
				if isCycle {
					// resolved is our own ancestor on the stack: we cannot
					// know its final hash yet, so fall back to its plain
					// hash and come back once it completes (step 2).
					depPending = true
					o.enqueuePending(resolved.LogicalPath, referrer.LogicalPath)
				}
				hashValue, known := bestAvailableHash(o.state, resolved.LogicalPath)
				if !known {
					depPending = true // defensive: should not happen, no hash available yet
					continue
				}
				replacement = hashedReference(resolved, hashValue)
			case Entry:
				continue // defensive: should not be reachable, entries are special-cased above
			}
		}

		out.WriteString(line[last:c.Start])
		out.WriteString(replacement)
		last = c.End
	}
	out.WriteString(line[last:])
	return out.String(), depPending, nil
}

// bestAvailableHash returns the most accurate hash on record for a
// Pending dependency: its special_hash if it already deferred once
// (that value is what its merkle_hash will equal once it completes, so
// using it early is not a placeholder but the final answer), else its
// plain_hash if it is a literal cycle partner still on the stack.
func bestAvailableHash(s *processingState, path string) (string, bool) {
	if sh, ok := s.specialHash[path]; ok {
		return sh, true
	}
	if ph, ok := s.plainHash[path]; ok {
		return ph, true
	}
	return "", false
}

// enqueuePending records that referrer must be reprocessed once
// dependency completes (spec.md §4.5 step 2's caller contract).
func (o *Orchestrator) enqueuePending(dependency, referrer string) {
	for _, existing := range o.state.pending[dependency] {
		if existing == referrer {
			return
		}
	}
	o.state.pending[dependency] = append(o.state.pending[dependency], referrer)
	o.state.invPending[referrer] = true
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// hashedReference builds the "/base_{hash}__.{ext}" in-content
// reference of spec.md §4.4, where base is the target's full logical
// path (including its own extension) per the bit-exact examples of
// spec.md §8 scenario 2 ("cache/app.js_{H}__.js").
func hashedReference(a *asset.Asset, hashValue string) string {
	body := strings.TrimPrefix(a.LogicalPath, "/") + "_" + hashValue + "__" + a.Extension
	return ensureLeadingSlash(body)
}

// entryCacheRelativePath and outputCacheRelativePath implement spec.md
// §6's output naming convention.
func entryCacheRelativePath(a *asset.Asset) string {
	return "cache/" + strings.TrimPrefix(a.LogicalPath, "/")
}

func outputCacheRelativePath(a *asset.Asset, hashValue string) string {
	return "cache/" + strings.TrimPrefix(a.LogicalPath, "/") + "_" + hashValue + "__" + a.Extension
}
