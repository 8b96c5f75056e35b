package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/handler"
	"github.com/dmitrymomot/paramparser/pkg/binder"
	"github.com/dmitrymomot/paramparser/pkg/environment"
	"github.com/dmitrymomot/paramparser/pkg/httpserver"
	"github.com/dmitrymomot/paramparser/pkg/logger"
	"github.com/dmitrymomot/paramparser/pkg/requestid"
	"github.com/dmitrymomot/paramparser/pkg/specfile"
)

var errNoSpecs = errors.New("no specs loaded")

func newServeCmd(a *app) *cobra.Command {
	var specDir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every spec in a directory over HTTP",
		Long: `Serve loads every spec file in --spec-dir and exposes it as
POST /validate/{name}, where name is the file name without its extension.

GET /specs lists the loaded names and GET /health reports readiness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("spec-dir") {
				a.cfg.SpecDir = specDir
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr = addr
			}
			return a.runServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&specDir, "spec-dir", "d", "", "directory of spec files (env PARAMPARSER_SPEC_DIR)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env HTTP_ADDR)")

	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	registry, err := specfile.LoadDir(a.cfg.SpecDir)
	if err != nil {
		return err
	}
	a.log.Info("specs loaded",
		logger.Component("serve"),
		slog.String("dir", a.cfg.SpecDir),
		slog.Any("specs", registry.Names()),
	)

	parser := paramparser.New(
		paramparser.WithLogger(a.log),
		paramparser.WithEnvironment(a.cfg.environment()),
	)

	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, newRouter(a.log, a.cfg, parser, registry))
}

// newRouter wires the HTTP surface of serve.
func newRouter(log *slog.Logger, cfg appConfig, parser handler.Parser, registry *specfile.Registry) http.Handler {
	errorHandler := handler.NewErrorHandler(log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(cfg.environment()))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, handler.ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if registry.Len() == 0 {
			return errNoSpecs
		}
		return nil
	}))

	r.Get("/specs", func(w http.ResponseWriter, r *http.Request) {
		if err := handler.JSON(registry.Names()).Render(w, r); err != nil {
			errorHandler(w, r, err)
		}
	})

	r.Post("/validate/{name}", handler.Named(parser, registry.Lookup,
		func(r *http.Request) string { return chi.URLParam(r, "name") },
		handler.WithLogger(log),
		handler.WithErrorHandler(errorHandler),
		handler.WithBinder(binder.Request(cfg.HTTP.MaxBodyBytes)),
	).ServeHTTP)

	return r
}
