package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/binder"
	"github.com/dmitrymomot/paramparser/pkg/logger"
	"github.com/dmitrymomot/paramparser/pkg/requestid"
)

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Detail     *ErrorDetail
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel: 4xx are the client's problem, everything else is ours.
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status code, a client facing detail and a log level.
func classifyError(err error) ErrorInfo {
	status := http.StatusInternalServerError

	var httpErr HTTPError
	switch {
	case paramparser.IsValidateError(err):
		ve, _ := paramparser.AsValidateError(err)
		status = ve.Code
	case errors.As(err, &httpErr):
		status = httpErr.Code
	case errors.Is(err, ErrUnknownSpec):
		status = http.StatusNotFound
	case errors.Is(err, binder.ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		status = http.StatusUnsupportedMediaType
	case isBindError(err):
		status = http.StatusBadRequest
	}

	detail := errorDetail(err, status)
	if errors.Is(err, ErrUnknownSpec) {
		detail = &ErrorDetail{Code: "unknown_spec", Message: err.Error()}
	}

	return ErrorInfo{
		StatusCode: status,
		Detail:     detail,
		LogLevel:   determineLogLevel(status),
	}
}

// logError logs the failed request with its request id and outcome.
func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	ctx := r.Context()
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("handler"),
	}
	if name := SpecNameFromContext(ctx); name != "" {
		attrs = append(attrs, logger.Spec(name))
	}
	if info.Detail != nil && info.Detail.Kind != "" {
		attrs = append(attrs, logger.Kind(info.Detail.Kind))
	}

	log.LogAttrs(ctx, info.LogLevel, "request error", attrs...)
}

// NewErrorHandler returns an ErrorHandler that logs the failure and renders
// it as a JSON error body. A nil logger discards the log records.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := classifyError(err)
		logError(log, r, err, info)

		resp := &jsonResponse{status: info.StatusCode, body: JSONResponse{Error: info.Detail}}
		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Component("handler"),
			)
		}
	}
}
