// Package filelist implements the on-disk file-list cache named by
// spec.md §1 as an external collaborator: a gzip-compressed JSON
// record of each enumerated file's size, modification time, and
// plain_hash, so a second run can skip re-reading and re-hashing
// unchanged files. It never influences the core's output — only
// whether a plain_hash is recomputed from disk or reused — so it
// cannot violate spec.md §8's determinism invariant.
package filelist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// Entry is one file's cached fingerprint.
type Entry struct {
	Size      int64     `json:"size"`
	ModTime   time.Time `json:"mod_time"`
	PlainHash string    `json:"plain_hash"`
}

// FileList maps logical path to its cached Entry.
type FileList struct {
	Entries map[string]Entry `json:"entries"`
}

// New returns an empty FileList, for a first run or when --thorough
// bypasses the cache entirely.
func New() *FileList {
	return &FileList{Entries: make(map[string]Entry)}
}

// Load reads and decompresses path, built the way the teacher's
// internal/library/persistency.go writes its database: gzip over
// JSON. A missing file is not an error — it simply means there is no
// cache yet.
func Load(path string) (*FileList, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening file-list cache %s: %w", path, err)
	}
	defer file.Close()

	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("decompressing file-list cache %s: %w", path, err)
	}
	defer reader.Close()

	fl := New()
	if err := json.NewDecoder(reader).Decode(fl); err != nil {
		return nil, fmt.Errorf("parsing file-list cache %s: %w", path, err)
	}
	if fl.Entries == nil {
		fl.Entries = make(map[string]Entry)
	}
	return fl, nil
}

// Save writes fl to path atomically: a uuid-suffixed temporary
// sibling is written and gzip-compressed first, then renamed into
// place, mirroring the teacher's SaveToLocalFile but using a random
// suffix rather than a fixed one, since multiple runs against the
// same cache directory may overlap.
func (fl *FileList) Save(path string) (err error) {
	temp := path + "." + uuid.NewString() + ".tmp"

	file, err := os.OpenFile(temp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating file-list cache temp file %s: %w", temp, err)
	}
	defer func() {
		if err != nil {
			os.Remove(temp)
		}
	}()

	compressor, _ := gzip.NewWriterLevel(file, gzip.BestSpeed)
	if err = json.NewEncoder(compressor).Encode(fl); err != nil {
		file.Close()
		return fmt.Errorf("encoding file-list cache: %w", err)
	}
	if err = compressor.Close(); err != nil {
		file.Close()
		return fmt.Errorf("closing file-list cache compressor: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("closing file-list cache temp file: %w", err)
	}

	if err = os.Rename(temp, path); err != nil {
		return fmt.Errorf("replacing file-list cache %s: %w", path, err)
	}
	return nil
}

// Lookup returns the cached plain_hash for logicalPath if its size
// and modification time still match what was recorded, reporting
// ok=false otherwise (new file, changed file, or never cached).
func (fl *FileList) Lookup(logicalPath string, size int64, modTime time.Time) (string, bool) {
	entry, found := fl.Entries[logicalPath]
	if !found || entry.Size != size || !entry.ModTime.Equal(modTime) {
		return "", false
	}
	return entry.PlainHash, true
}

// Record stores or updates the cached fingerprint for logicalPath.
func (fl *FileList) Record(logicalPath string, size int64, modTime time.Time, plainHash string) {
	fl.Entries[logicalPath] = Entry{Size: size, ModTime: modTime, PlainHash: plainHash}
}
