// Package hash implements spec.md §4.1's Hash Primitives: a short
// content hash over bytes and a composition rule for Merkle hashing.
//
// MD5 is used here purely for its distribution properties over short
// hex suffixes, not as a security boundary (spec.md §4.1).
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// ShortLength is the number of hex characters a short hash is
// truncated to.
const ShortLength = 6

// Short returns the lowercase hex MD5 of content, truncated to the
// first ShortLength characters.
func Short(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])[:ShortLength]
}

// LineJoined returns the short hash of lines concatenated with a
// single newline between them and no trailing newline, the
// composition rule spec.md §4.1 defines for combining a file's own
// content hash with its dependencies' hashes.
func LineJoined(lines []string) string {
	return Short([]byte(strings.Join(lines, "\n")))
}
