// Package slug derives filesystem- and URL-safe identifiers from
// human-readable publication names.
package slug
