// Package urlpath implements joining and validity checks for the
// absolute URL paths under which publications are exposed.
package urlpath

import "strings"

// Join places path under prefix. The prefix is normalized to end with
// exactly one slash; a path that already starts with the normalized
// prefix is returned unchanged, which makes Join idempotent in its
// second argument. An empty path yields the prefix without its trailing
// slash.
func Join(prefix, path string) string {
	prefix = strings.TrimRight(prefix, "/") + "/"
	if strings.HasPrefix(path, prefix) {
		return path
	}
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return strings.TrimSuffix(prefix, "/")
	}
	return prefix + path
}

// IsValid reports whether value is usable as a URL path component
// chain: non-empty and free of NUL and other control bytes. Absolute
// form is checked separately where it matters.
func IsValid(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

// IsAbsolute reports whether value is a syntactically valid absolute
// URL path.
func IsAbsolute(value string) bool {
	return IsValid(value) && strings.HasPrefix(value, "/")
}
