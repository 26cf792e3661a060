// Package enumerate implements the search-root enumerator named but
// left unspecified by spec.md §1 ("file-system enumeration of search
// roots"): it walks one or more search roots and produces the File
// Registry the core treats as read-only (spec.md §3).
package enumerate

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/n2code/recache/internal/asset"
)

// Result is everything the enumerator hands to the core and to the
// Resolver's configuration.
type Result struct {
	Registry *asset.Registry

	// DirChildren maps a logical directory path to the names of its
	// immediate child directories, keyed exactly as the Resolver's
	// fallback step 4 (spec.md §4.3) needs: DirChildren["/games/sharedAssets-3js"]
	// gives the candidate sibling directories to try.
	DirChildren map[string][]string
}

// Enumerate walks every root in order, registering each regular file
// it finds. Later roots never override an asset already registered
// under the same logical path (spec.md §3's first-wins rule, enforced
// by Registry.Register itself).
func Enumerate(roots []string) (*Result, error) {
	reg := asset.NewRegistry()
	dirChildren := make(map[string][]string)

	for _, root := range roots {
		if err := walkRoot(root, reg, dirChildren); err != nil {
			return nil, fmt.Errorf("enumerating %s: %w", root, err)
		}
	}

	for dir, children := range dirChildren {
		sort.Strings(children)
		dirChildren[dir] = children
	}

	return &Result{Registry: reg, DirChildren: dirChildren}, nil
}

func walkRoot(root string, reg *asset.Registry, dirChildren map[string][]string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		logical := "/" + filepath.ToSlash(rel)
		parent := path.Dir(logical)

		if d.IsDir() {
			dirChildren[parent] = append(dirChildren[parent], d.Name())
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		ext := filepath.Ext(logical)
		a := &asset.Asset{
			OriginalPath: p,
			LogicalPath:  logical,
			Base:         logical[:len(logical)-len(ext)],
			Extension:    ext,
			IsTextual:    asset.IsTextualExtension(ext) && info.Size() < asset.MaxTextualSize(),
		}
		reg.Register(a)
		return nil
	})
}
