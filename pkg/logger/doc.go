// Package logger builds *slog.Logger instances for inputkit binaries and
// libraries and provides attribute helpers with consistent key names.
//
// New applies functional options on top of production-safe defaults (JSON
// output, INFO level, stdout):
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	log.DebugContext(ctx, "input dropped by rule",
//	    logger.Field("published_at"),
//	    logger.Rule("date_strict"),
//	)
//
// Context extractors registered with WithContextValue run on every record, so
// request scoped values are picked up without building a logger per request.
//
// Helpers such as Error return an empty slog.Attr for nil input, which slog
// drops, so they can be passed unconditionally.
package logger
