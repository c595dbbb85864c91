// Package logger builds the application's *slog.Logger.
//
// Production output is JSON; development output is colourised text rendered by
// github.com/lmittmann/tint. Request-scoped values (request id, user, role) are
// pulled from the context on every record by a handler decorator, so call
// sites only need the *Context logging variants:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "pharmagarde"),
//		logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "pharmacy registered", logger.PharmacyID(id))
package logger
