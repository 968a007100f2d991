package document

import "strings"

// SanitizeFilename replaces characters that are unsafe in file names on
// common filesystems with underscores.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
