// Package environment propagates the application environment (development,
// staging, production) through configuration, context.Context, HTTP requests
// and structured logs.
//
// The record parser consults it to decide whether validation errors capture
// a stack trace: they do everywhere except production.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//
//	mux := http.NewServeMux()
//	handler := environment.Middleware(env)(mux)
//
//	if environment.IsProduction(r.Context()) {
//	    // production-specific behaviour
//	}
//
// LoggerExtractor returns a slog attribute extractor compatible with
// logger.WithContextExtractors.
package environment
