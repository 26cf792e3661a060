package orchestrator

import (
	"fmt"
	"strings"

	"github.com/n2code/recache/internal/asset"
	"github.com/n2code/recache/internal/hash"
)

// processTextual implements spec.md §4.5 step 5.
//
// completed is false exactly when come_back_later was set, meaning the
// caller must treat this as Pending and not mark the asset done.
func (o *Orchestrator) processTextual(a *asset.Asset, pendingOk bool) (merkle string, completed bool, err error) {
	raw, err := o.readFile(a.OriginalPath)
	if err != nil {
		return "", false, fmt.Errorf("read_error: %s: %w", a.OriginalPath, err)
	}

	lines := splitNormalized(raw)
	lines = prependTimestamp(a, lines, o.clock())

	comeBackLater := false
	out := make([]string, len(lines))
	for i, line := range lines {
		rewritten, pending, rerr := o.rewriteLine(a, line)
		if rerr != nil {
			return "", false, rerr
		}
		if pending {
			comeBackLater = true
		}
		out[i] = rewritten
	}
	joined := strings.Join(out, "\n")

	if comeBackLater {
		o.state.specialHash[a.LogicalPath] = hash.LineJoined(out)
		return "", false, nil
	}

	if pendingOk {
		merkle = o.state.specialHash[a.LogicalPath]
	} else if sh, ok := o.state.specialHash[a.LogicalPath]; ok {
		merkle = sh
	} else {
		merkle = hash.LineJoined(out)
	}

	dest := entryCacheRelativePath(a)
	if !o.entries.Contains(a.LogicalPath) {
		dest = outputCacheRelativePath(a, merkle)
	}
	a.OutputPath = dest
	if err := o.emitter.WriteText(dest, []byte(joined)); err != nil {
		return "", false, err
	}
	return merkle, true, nil
}

// splitNormalized splits raw on "\n" and strips a trailing "\r" from
// each line, resolving spec.md §9's open question on CRLF handling by
// normalizing to LF in the cache.
func splitNormalized(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// prependTimestamp implements spec.md §4.5 step 5's comment-line rule:
// HTML/CSS always get an HTML-style comment; JS gets a line comment
// unless its first line already begins with "{" (e.g. JSON-like
// module wrappers); other textual types (.json, .dae) get none.
func prependTimestamp(a *asset.Asset, lines []string, timestamp string) []string {
	var comment string
	switch a.Extension {
	case ".html", ".css":
		comment = fmt.Sprintf("<!-- Updated: %s -->", timestamp)
	case ".js", ".mjs":
		if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "{") {
			comment = fmt.Sprintf("// Updated: %s", timestamp)
		}
	}
	if comment == "" {
		return lines
	}
	return append([]string{comment}, lines...)
}
