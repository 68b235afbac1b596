// Package logger provides structured logging setup for the application
// and helpers for carrying a request-scoped *slog.Logger through a
// context.Context.
package logger
