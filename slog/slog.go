// Package slog provides logging decorators for locprof services using the
// standard structured logger.
package slog
