// Package logger builds slog loggers for the storefront: a JSON stdout
// factory with context-based attribute injection, and an optional Sentry
// destination that degrades gracefully to stdout-only when no DSN is
// configured.
package logger
