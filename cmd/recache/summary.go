package main

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/n2code/recache/internal/filelist"
	"github.com/n2code/recache/internal/hash"
	"github.com/n2code/recache/internal/output"
)

// collectHints walks roots, consulting cache for each file's cached
// plain_hash by (size, mtime). A hit is copied into hints so the
// orchestrator can skip re-reading that file; a miss is hashed here
// and recorded into cache so later runs benefit, keeping the file-list
// cache self-maintaining rather than requiring a separate warm-up step.
func collectHints(roots []string, cache *filelist.FileList, hints map[string]string) {
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return nil
			}
			logical := "/" + filepath.ToSlash(rel)
			if _, claimed := hints[logical]; claimed {
				return nil // an earlier root already owns this logical path
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			if h, ok := cache.Lookup(logical, info.Size(), info.ModTime()); ok {
				hints[logical] = h
				return nil
			}
			content, err := os.ReadFile(p)
			if err != nil {
				return nil
			}
			h := hash.Short(content)
			cache.Record(logical, info.Size(), info.ModTime(), h)
			hints[logical] = h
			return nil
		})
	}
}

// walkAndInsert renders outputDir's final contents into tree as Cached
// entries, then adds every not-found candidate so the summary reads as
// a single report of what was built and what was missing.
func walkAndInsert(outputDir string, notFound map[string]bool, tree output.VisualFileTree) error {
	err := filepath.WalkDir(outputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(outputDir, p)
		if relErr != nil {
			return relErr
		}
		tree.InsertPath(rel, output.Cached)
		return nil
	})
	if err != nil {
		return err
	}
	for candidate := range notFound {
		tree.InsertPath(candidate, output.NotFound)
	}
	return nil
}
