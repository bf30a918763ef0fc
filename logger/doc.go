// Package logger configures log/slog for multiview programs and hands out
// loggers decorated with values carried on a context.
package logger
