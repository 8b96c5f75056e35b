// Package httpserver runs an http.Handler with configurable timeouts,
// structured lifecycle logging and graceful shutdown.
//
// Run opens the listener, calls the start hooks and serves until the context
// is cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Shutdown waits
// at most the configured shutdown timeout and then runs the stop hooks.
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
