package slug

import "strings"

// windowsReserved holds characters rejected by Windows filesystems on
// top of the POSIX set. Slugs are sanitized against both so a derived
// directory name stays portable.
const windowsReserved = `<>:"\|?*`

// SanitizeFilename removes characters that are unsafe in a file name on
// either POSIX or Windows, and trims trailing dots and spaces that
// Windows forbids. It never touches path separators' surroundings
// because the input is a single path component.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '/' || strings.ContainsRune(windowsReserved, r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimRight(name, ". ")
}

// SanitizePOSIX removes only the characters POSIX forbids in a path
// component. URL path segments use this looser variant, so the URL slug
// can differ from the filesystem slug on platform-restricted names.
func SanitizePOSIX(name string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || r == '/' {
			return -1
		}
		return r
	}, name)
}
