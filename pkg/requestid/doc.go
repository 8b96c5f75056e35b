// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is made of
// letters, digits, '-' and '_' and is at most 128 bytes long; otherwise it
// generates a UUID. The id is stored in the request context, echoed in the
// response header and can be added to log records with LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid
