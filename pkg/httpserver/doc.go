// Package httpserver runs an http.Handler with configurable timeouts,
// structured lifecycle logging and graceful shutdown.
//
// Run (or Serve, for a caller-provided listener) blocks until the context is
// cancelled or the process receives SIGINT/SIGTERM, then drains in-flight
// requests with http.Server.Shutdown bounded by the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Start failures wrap ErrStart and shutdown failures wrap ErrShutdown.
// HealthCheckHandler provides liveness and readiness probes.
package httpserver
