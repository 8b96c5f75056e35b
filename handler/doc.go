// Package handler exposes record validation over net/http.
//
// Validate is middleware: it binds the request into a record (JSON body,
// form body or query string, see package binder), runs the parser and hands
// the cleaned record to the next handler through the request context.
//
//	spec := paramparser.Spec{
//		"email": {paramparser.Required(), paramparser.Pattern(pattern.Email)},
//	}
//	mux.Handle("POST /signup", handler.Validate(parser, spec, nil,
//		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			record, _ := handler.RecordFromContext(r.Context())
//			handler.JSON(record).Render(w, r)
//		}),
//	))
//
// Endpoint and Named answer with the cleaned record directly; Named serves
// a family of specs selected by a request parameter.
//
// # Errors
//
// Failures are passed to an ErrorHandler. The default one logs the request
// at warn (4xx) or error (5xx) level with its request id and writes a JSON
// body:
//
//	{"error":{"code":"validation_error","message":"Validation failed",
//	          "kind":"MISSING","messages":["email is required"],
//	          "details":{"email":["email is required"]}}}
//
// A ValidateError maps to 400, malformed bodies to 400, unsupported content
// types to 415, oversized bodies to 413, unknown specs to 404 and any other
// error to 500 without exposing its text.
package handler
