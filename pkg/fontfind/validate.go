package fontfind

import (
	"strings"
)

// fontExts are the file suffixes recognised as font files. Matching is case
// sensitive.
var fontExts = []string{".ttf", ".ttc", ".otf"}

// IsValidPath reports whether path may be used as a search root. Empty paths
// and paths containing a parent-directory sequence are rejected. The check is
// purely syntactic.
func IsValidPath(path string) bool {
	if path == "" {
		return false
	}
	return !strings.Contains(path, "..")
}

// HasFontExtension reports whether path ends in a known font extension. The
// extension alone does not count as a file name.
func HasFontExtension(path string) bool {
	for _, ext := range fontExts {
		if len(path) > len(ext) && strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
