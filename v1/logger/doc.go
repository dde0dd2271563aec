// Package logger provides structured logging for the store client packages.
//
// It wraps Uber's Zap logger behind the simplified
// Info/Debug/Warn/Error/Fatal(msg, err, fields...) calling convention that
// the client packages declare in their own narrow Logger interfaces, and
// ships an fx module for dependency injection.
//
// Basic usage:
//
//	import "github.com/docpipe/stores/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "document-indexer",
//	})
//
//	log.Info("documents written", nil, map[string]interface{}{
//	    "collection": "docs",
//	    "count":      42,
//	})
//
// With fx, add logger.FXModule to the application and provide a
// logger.Config; client packages pick the logger up as an optional
// dependency.
package logger
