package template

import (
	"crypto/sha256"
	"encoding/base64"
)

// Hashes holds the CSP source expressions of every inline block of a compiled
// page, in document order. Identical blocks produce repeated entries.
type Hashes struct {
	Script []string
	Style  []string
}

func collectHashes(text string, tag Tag) []string {
	matches := tag.Pattern().FindAllStringSubmatch(text, -1)
	hashes := make([]string, 0, len(matches))
	for _, m := range matches {
		hashes = append(hashes, HashSource(m[1]))
	}
	return hashes
}

// HashSource formats the SHA-256 digest of content as a CSP hash source,
// e.g. 'sha256-47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU='.
func HashSource(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "'sha256-" + base64.StdEncoding.EncodeToString(sum[:]) + "'"
}
