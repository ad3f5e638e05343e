// Package logger provides the leveled logging used across the messenger.
// Console output goes through a log/slog text handler; file output is JSON
// written through a rotating lumberjack writer.
package logger
