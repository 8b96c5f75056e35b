// Package logger builds *slog.Logger values from functional options and
// provides attribute constructors with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record. Request-scoped
// values such as the request id are injected this way.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "paramparser"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "record accepted", logger.Spec("signup"), logger.Duration(time.Since(start)))
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
