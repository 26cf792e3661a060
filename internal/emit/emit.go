// Package emit implements spec.md §4.6's Emitter: atomic, idempotent
// writes of rewritten text and copies of opaque binary files into the
// output cache.
package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Emitter writes into a single output cache root.
type Emitter struct {
	root       string
	tempSuffix string // appended to the sibling temp path, spec.md §4.5 step 7 uses the process id
}

// New returns an Emitter rooted at root. tempSuffix is appended to the
// temporary sibling path used for atomic writes; recache.Build passes
// the process id here (or Config.ProcessID) per spec.md §4.5 step 7.
func New(root string, tempSuffix string) *Emitter {
	return &Emitter{root: root, tempSuffix: tempSuffix}
}

// Root returns the output cache's root directory.
func (e *Emitter) Root() string {
	return e.root
}

// WriteText writes content to the cache at the given cache-relative
// path, atomically, creating intermediate directories as needed.
// If the target already exists as a regular file the write is
// skipped (spec.md §4.6 idempotence).
func (e *Emitter) WriteText(cacheRelativePath string, content []byte) error {
	dest := filepath.Join(e.root, cacheRelativePath)
	if alreadyPresent(dest) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("emit_error: creating directory for %s: %w", cacheRelativePath, err)
	}
	temp := dest + "." + e.tempSuffix
	if err := os.WriteFile(temp, content, 0o644); err != nil {
		return fmt.Errorf("emit_error: writing %s: %w", temp, err)
	}
	if err := atomicRename(temp, dest); err != nil {
		return fmt.Errorf("emit_error: renaming %s into place: %w", cacheRelativePath, err)
	}
	return nil
}

// CopyBinary copies the file at srcAbsolutePath to the cache at the
// given cache-relative path, atomically and idempotently, identically
// to WriteText.
func (e *Emitter) CopyBinary(srcAbsolutePath string, cacheRelativePath string) error {
	dest := filepath.Join(e.root, cacheRelativePath)
	if alreadyPresent(dest) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("emit_error: creating directory for %s: %w", cacheRelativePath, err)
	}

	src, err := os.Open(srcAbsolutePath)
	if err != nil {
		return fmt.Errorf("emit_error: opening source %s: %w", srcAbsolutePath, err)
	}
	defer src.Close()

	temp := dest + "." + e.tempSuffix
	out, err := os.Create(temp)
	if err != nil {
		return fmt.Errorf("emit_error: creating %s: %w", temp, err)
	}
	if _, copyErr := io.Copy(out, src); copyErr != nil {
		out.Close()
		os.Remove(temp)
		return fmt.Errorf("emit_error: copying %s: %w", srcAbsolutePath, copyErr)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("emit_error: closing %s: %w", temp, err)
	}
	if err := atomicRename(temp, dest); err != nil {
		return fmt.Errorf("emit_error: renaming %s into place: %w", cacheRelativePath, err)
	}
	return nil
}

func alreadyPresent(dest string) bool {
	info, err := os.Lstat(dest)
	return err == nil && info.Mode().IsRegular()
}

// atomicRename unlinks any existing target (a stale regular file left
// by a prior interrupted run) then renames the temp sibling into
// place, per spec.md §4.5 step 7.
func atomicRename(temp, dest string) error {
	if info, err := os.Lstat(dest); err == nil && info.Mode().IsRegular() {
		if err := os.Remove(dest); err != nil {
			return err
		}
	}
	return os.Rename(temp, dest)
}
