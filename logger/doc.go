// Package logger provides structured logging for refgroup built on zerolog.
//
// The package exposes a global logger for the common case plus explicit
// Logger instances for callers that need isolation:
//
//	logger.Init(logger.Config{Level: "debug", Format: "console"})
//	logger.Debug("reference bound", logger.Fields("group", "production", "name", "db"))
//
// Component-tagged loggers keep registry, builder, and config output
// distinguishable:
//
//	log := logger.WithComponent("builder")
package logger
