// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener first, so address errors are returned immediately
// and wrapped in ErrStart. It then serves until the context is cancelled, the
// process receives SIGINT or SIGTERM, or Shutdown is called, and drains
// in-flight requests for at most the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
package httpserver
