// Package logger builds *slog.Logger values for the neologizer commands and
// server, and names the attributes they log.
//
// New takes functional options for format, level, output, static attributes
// and context extractors. Extractors run on every record, which is how
// request ids end up in server logs:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "neologizer"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "run finished", logger.Mode("generate"), logger.Stats(res.Stats))
//
// Attribute helpers return an empty slog.Attr for nil input, which slog drops.
package logger
