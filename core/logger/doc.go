// Package logger provides slog construction from environment-driven config
// and typed attribute helpers for consistent structured logging.
//
// Attribute helpers keep log output uniform across the codebase:
//
//	log.Info("request completed",
//		logger.Method("GET"),
//		logger.Path("/users/42"),
//		logger.StatusCode(200),
//		logger.Elapsed(start),
//	)
//
// Helpers taking nilable input return the empty Attr for nil, so they are
// safe to pass unconditionally.
package logger
