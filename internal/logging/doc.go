// Package logging assembles the structured slog loggers shared by the
// webpub1c packages and command front-end.
package logging
