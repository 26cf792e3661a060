package output

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// NodeStatus marks a rendered path with its outcome in the build, so
// the tree printed at the end of a run (spec.md §1/§6's "end-of-run
// summary") reads as a report rather than a bare file listing.
type NodeStatus int

const (
	// Cached marks an asset actually emitted into the cache this run.
	Cached NodeStatus = iota
	// NotFound marks an entry in the not-found report (spec.md §1's
	// "Not-found report"): a candidate reference that resolved to no
	// registered asset.
	NotFound
)

func (s NodeStatus) marker() string {
	switch s {
	case NotFound:
		return "[not-found] "
	default:
		return ""
	}
}

// VisualFileTree renders a set of paths as an indented tree, used for
// the end-of-run summary's cache listing and not-found report.
type VisualFileTree struct {
	tree gotree.Tree
	dirs map[string]gotree.Tree
}

// NewVisualFileTree returns a tree rooted at rootLabel.
func NewVisualFileTree(rootLabel string) VisualFileTree {
	return VisualFileTree{tree: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
}

func (t VisualFileTree) getDir(dirPath string) (dir gotree.Tree) {
	if dirPath == "." || dirPath == string(filepath.Separator) {
		return t.tree
	}
	dir = t.dirs[dirPath]
	if dir == nil {
		parentPath := filepath.Dir(dirPath)
		parentDir := t.getDir(parentPath)
		dir = parentDir.Add(filepath.Base(dirPath))
		t.dirs[dirPath] = dir
	}
	return
}

// InsertPath adds filePath to the tree under the given status, creating
// intermediate directory nodes as needed. A not-found candidate (which
// never reached the cache, and so has no real parent directory on
// disk) is still filed under its referenced path, so unresolved
// references appear in context next to the assets that do exist.
func (t VisualFileTree) InsertPath(filePath string, status NodeStatus) {
	path := filepath.FromSlash(filePath)
	file := filepath.Base(path)
	dir := t.getDir(filepath.Dir(path))
	dir.Add(status.marker() + file)
}

// Render returns the tree as indented text.
func (t VisualFileTree) Render() string {
	return t.tree.Print()
}
