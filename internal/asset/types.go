// Package asset defines the registered-file record (Asset) and the
// read-only registry the core is handed by the enumerator.
package asset

// maxTextualSize is the size threshold above which a file is treated
// as opaque regardless of extension.
const maxTextualSize = 5 * 1024 * 1024 // 5 MiB

// textualExtensions are the extensions eligible for reference scanning
// and Merkle hashing; anything else is opaque and merely copied.
var textualExtensions = map[string]bool{
	".js":   true,
	".mjs":  true,
	".html": true,
	".css":  true,
	".dae":  true,
	".json": true,
}

// Asset is a single registered file. Everything but the hash fields is
// immutable after registration; the hash fields are populated by the
// orchestrator as it processes the dependency graph.
type Asset struct {
	// OriginalPath is the on-disk path as found by the enumerator.
	OriginalPath string

	// LogicalPath is the URL-relative path by which other files
	// reference this asset, always slash-separated and always
	// starting with "/".
	LogicalPath string

	// Base is LogicalPath without its extension.
	Base string

	// Extension is the file extension including the leading dot, or
	// the empty string if the file has none.
	Extension string

	// IsTextual is true iff Extension is one of the recognized
	// textual extensions and the file is smaller than 5 MiB.
	IsTextual bool

	// derived, populated by the orchestrator when the asset completes;
	// PlainHash stays empty unless the orchestrator needed it
	PlainHash  string
	MerkleHash string
	OutputPath string
}

// IsTextualExtension reports whether ext (including the leading dot)
// is one of the extensions eligible for textual processing.
func IsTextualExtension(ext string) bool {
	return textualExtensions[ext]
}

// MaxTextualSize is exported so the enumerator can apply the same
// threshold spec.md §3 defines for Asset.IsTextual.
func MaxTextualSize() int64 {
	return maxTextualSize
}
