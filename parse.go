package paramparser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dmitrymomot/paramparser/pkg/environment"
	"github.com/dmitrymomot/paramparser/pkg/logger"
	"github.com/dmitrymomot/paramparser/pkg/validator"
)

// Parser validates and transforms records. The zero value is not usable;
// create one with New. A Parser holds no per-call state and is safe for
// concurrent use.
type Parser struct {
	logger *slog.Logger
	env    environment.Environment
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report rejected records at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithEnvironment sets the environment. Outside production every
// ValidateError carries the stack trace of the failing call.
func WithEnvironment(env environment.Environment) Option {
	return func(p *Parser) {
		p.env = environment.Parse(string(env))
	}
}

// New returns a Parser with the given options applied.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger: logger.Discard(),
		env:    environment.Development,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse validates record against spec using a default Parser. See Parser.Parse.
func Parse(record Record, spec Spec, defaults Record) (Record, error) {
	return defaultParser.Parse(record, spec, defaults)
}

// Parse checks required fields and dependencies, drops undeclared keys,
// fills defaults, checks formats and finally runs each field's transforms.
//
// It returns a new record; record, spec and defaults are not modified.
// Every failure is reported as a *ValidateError holding all problems of the
// phase that stopped the record: KindMissing for absent fields,
// KindIncorrectFormat for rejected values and KindOther for misconfigured
// rules, failing transforms and panics.
func (p *Parser) Parse(record Record, spec Spec, defaults Record) (result Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = p.reject(newValidateError(KindOther, validator.ValidationErrors{
				validator.Unexpected("", fmt.Sprint(r)),
			}))
		}
	}()

	result, err = p.parse(record, spec, defaults)
	if err != nil {
		return nil, p.reject(toValidateError(err))
	}
	return result, nil
}

func (p *Parser) parse(record Record, spec Spec, defaults Record) (Record, error) {
	if record == nil {
		record = Record{}
	}
	names := fieldNames(spec)

	if errs := checkPresence(record, spec, names); len(errs) > 0 {
		return nil, newValidateError(KindMissing, errs)
	}

	working := filterKeys(record, spec)
	assignDefaults(working, names, defaults)

	if errs := checkFormats(working, spec, names, p.parse); len(errs) > 0 {
		kind := KindIncorrectFormat
		if errs.Kind() == KindOther {
			kind = KindOther
		}
		return nil, newValidateError(kind, errs)
	}

	if err := transformRecord(working, spec, names); err != nil {
		return nil, err
	}

	return working, nil
}

// reject finalises an outgoing error: stack capture and logging.
func (p *Parser) reject(ve *ValidateError) *ValidateError {
	if ve.Stack == nil && !p.env.IsProduction() {
		ve.Stack = debug.Stack()
	}
	p.logger.LogAttrs(context.Background(), slog.LevelDebug, "record rejected",
		logger.Component("paramparser"),
		logger.Kind(ve.Kind),
		logger.Failures(len(ve.Errors)),
		logger.Error(ve),
	)
	return ve
}

// toValidateError passes ValidateErrors through and wraps anything else as OTHER.
func toValidateError(err error) *ValidateError {
	if ve, ok := AsValidateError(err); ok {
		return ve
	}
	return newValidateError(KindOther, failures(err))
}

// failures converts an error returned by parse into aggregate entries.
func failures(err error) validator.ValidationErrors {
	if ve, ok := AsValidateError(err); ok {
		return ve.Errors
	}
	var te *transformError
	if errors.As(err, &te) {
		return validator.ValidationErrors{validator.Unexpected(te.field, te.Error())}
	}
	return validator.ValidationErrors{validator.Unexpected("", err.Error())}
}
