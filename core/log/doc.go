// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides the structured logger used by the
//              charseq command.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package log provides leveled, structured logging.
//
// A Logger writes Entry values through a Formatter (JSON, text, console or
// logfmt) to an io.Writer, stderr by default. Context is added with the
// With* methods, each of which returns a copy:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatJSON}).
//		WithName("charseq").
//		WithRequestID(uuid.NewString())
//	logger.Info("query finished", log.Fields{"op": "take"})
//
// LogError understands *error.Error from core/error: the error's severity
// selects the level and its code, operation and details become error_*
// fields.
package log
