// Package pkglog configures the process-wide slog logger.
//
// Records are written as JSON to stdout, tagged with the service name and,
// when the context carries one, the gateway correlation ID.
package pkglog
