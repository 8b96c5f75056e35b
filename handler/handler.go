package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/binder"
	"github.com/dmitrymomot/paramparser/pkg/logger"
)

// DefaultMaxBodyBytes bounds request bodies read by the default binder.
const DefaultMaxBodyBytes = 1 << 20

// Parser validates records. *paramparser.Parser implements it.
type Parser interface {
	Parse(record paramparser.Record, spec paramparser.Spec, defaults paramparser.Record) (paramparser.Record, error)
}

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Lookup resolves a spec and its defaults by name.
type Lookup func(name string) (paramparser.Spec, paramparser.Record, bool)

// Option configures Validate, Endpoint and Named.
type Option func(*options)

type options struct {
	bind         binder.Func
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// WithBinder replaces the request binder. Nil is ignored.
func WithBinder(b binder.Func) Option {
	return func(o *options) {
		if b != nil {
			o.bind = b
		}
	}
}

// WithErrorHandler replaces the error handler. Nil is ignored.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithLogger sets the logger used for request logs and the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		bind:   binder.Request(DefaultMaxBodyBytes),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.errorHandler == nil {
		o.errorHandler = NewErrorHandler(o.logger)
	}
	return o
}

// Validate binds the request into a record, parses it against spec and
// passes the cleaned record to next through the request context
// (see RecordFromContext). Rejected records never reach next; they are
// answered by the error handler, with 400 for a ValidateError.
func Validate(p Parser, spec paramparser.Spec, defaults paramparser.Record, next http.Handler, opts ...Option) http.Handler {
	o := newOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, ok := o.parse(w, r, p, spec, defaults)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(WithRecord(r.Context(), record)))
	})
}

// Endpoint answers every request with the cleaned record as JSON data.
func Endpoint(p Parser, spec paramparser.Spec, defaults paramparser.Record, opts ...Option) http.Handler {
	o := newOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.respond(w, r, p, spec, defaults)
	})
}

// Named is Endpoint for a family of specs: name extracts the spec name from
// the request (for example a router path parameter) and lookup resolves it.
// Unknown names are answered with 404.
func Named(p Parser, lookup Lookup, name func(*http.Request) string, opts ...Option) http.Handler {
	o := newOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		specName := name(r)
		r = r.WithContext(WithSpecName(r.Context(), specName))

		spec, defaults, ok := lookup(specName)
		if !ok {
			o.errorHandler(w, r, &unknownSpecError{name: specName})
			return
		}
		o.respond(w, r, p, spec, defaults)
	})
}

func (o *options) respond(w http.ResponseWriter, r *http.Request, p Parser, spec paramparser.Spec, defaults paramparser.Record) {
	record, ok := o.parse(w, r, p, spec, defaults)
	if !ok {
		return
	}

	resp := JSON(record)
	if resp == nil {
		o.errorHandler(w, r, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		o.errorHandler(w, r, err)
	}
}

// parse binds and validates; on failure the error handler has already answered.
func (o *options) parse(w http.ResponseWriter, r *http.Request, p Parser, spec paramparser.Spec, defaults paramparser.Record) (paramparser.Record, bool) {
	start := time.Now()

	input, err := o.bind(r)
	if err != nil {
		o.errorHandler(w, r, err)
		return nil, false
	}

	record, err := p.Parse(input, spec, defaults)
	if err != nil {
		o.errorHandler(w, r, err)
		return nil, false
	}

	o.logger.DebugContext(r.Context(), "record accepted",
		logger.Component("handler"),
		logger.Spec(SpecNameFromContext(r.Context())),
		logger.Duration(time.Since(start)),
	)
	return record, true
}

type unknownSpecError struct{ name string }

func (e *unknownSpecError) Error() string { return ErrUnknownSpec.Error() + ": " + e.name }

func (e *unknownSpecError) Unwrap() error { return ErrUnknownSpec }
