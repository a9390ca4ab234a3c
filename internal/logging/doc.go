// Package logging configures structured slog output for docquery.
// By default logs go to stderr in text format; file logging with rotation
// is opt-in via configuration so the CLI stays quiet during normal use.
package logging
