// Package scanner implements spec.md §4.2's Reference Scanner: a pure
// function from one line of text to an ordered sequence of candidate
// path references.
package scanner

import (
	"regexp"
	"strings"

	"github.com/n2code/recache/internal/asset"
)

// sourceMappingMarker is the literal that, when present anywhere on a
// line, causes the line to contribute no references and its text to be
// dropped from the rewritten output, leaving an empty line (spec.md §4.2).
const sourceMappingMarker = "sourceMappingURL="

// referencePattern implements spec.md §4.2's candidate grammar:
//
//	opening quote
//	optional (async:)?(module:)?(async:)?(css:)? prefix tags
//	optional ${...} interpolation segment
//	optional "= " marker (captured so a match can be discarded)
//	a path of [A-Za-z0-9/._@% ()+,=-]+ with at least one '.' before
//	  an extension of [A-Za-z0-9_ ()-]+
//	closing quote or backslash
var referencePattern = regexp.MustCompile(
	"['\"`]" +
		"(?:async:)?(?:module:)?(?:async:)?(?:css:)?" +
		`(?:\$\{[^}]*\})?` +
		`(= )?` +
		`([A-Za-z0-9/._@% ()+,=\-]+\.[A-Za-z0-9_ ()\-]+)` +
		"(?:['\"`]|\\\\)",
)

const (
	markerGroup    = 1
	candidateGroup = 2
)

// Candidate is one extracted reference along with the byte span of
// its matched text within the scanned line.
type Candidate struct {
	Text  string
	Start int
	End   int
}

// ScanLine extracts the ordered candidate references from line,
// consulting ignore to silently suppress ignored candidates.
//
// dropLine is true iff the line's text must be dropped from the
// rewritten output, leaving an empty line (the sourceMappingURL case,
// which takes precedence over the comment-line rule); it is never true
// together with a non-empty candidate list.
func ScanLine(line string, ignore *asset.IgnoreSet) (candidates []Candidate, dropLine bool) {
	if strings.Contains(line, sourceMappingMarker) {
		return nil, true
	}
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "//") {
		return nil, false
	}

	matches := referencePattern.FindAllStringSubmatchIndex(line, -1)
	for _, m := range matches {
		if m[2*markerGroup] != -1 { // "= " marker present: discard
			continue
		}
		start, end := m[2*candidateGroup], m[2*candidateGroup+1]
		text := line[start:end]

		if strings.HasPrefix(text, "//") || strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
			continue
		}
		if ignore != nil && ignore.Ignores(text) {
			continue
		}
		candidates = append(candidates, Candidate{Text: text, Start: start, End: end})
	}
	return candidates, false
}
