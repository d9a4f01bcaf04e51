// Package logger provides the structured logger used while building and
// rendering controls.
//
// It wraps log/slog with context extractors: functions that pull request- or
// control-scoped values out of a context and attach them to every record
// logged with that context.
//
// # Basic Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithExtractors(logger.ControlExtractor()),
//	)
//
//	ctx = logger.WithControl(ctx, "select", "Country")
//	log.DebugContext(ctx, "options bound", slog.Int("count", 12))
//	// {"level":"DEBUG","msg":"options bound","count":12,"control":{"kind":"select","name":"Country"}}
//
// # Custom Extractors
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//	    if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//	        return slog.String("request_id", id), true
//	    }
//	    return slog.Attr{}, false
//	}
//	log := logger.New(logger.WithExtractors(requestID))
//
// Extraction runs on every log call so values always reflect the current context.
//
// # No-op Logger
//
// [NewNope] discards everything and is the default when no logger is configured.
package logger
