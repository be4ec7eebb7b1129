// Package server wraps http.Server with graceful shutdown, functional
// options, and environment-driven configuration.
//
//	srv := server.New(":8080", server.WithLogger(log))
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Fatal(err)
//	}
//
// Start blocks until the listener fails or the context is canceled; Stop
// drains in-flight requests within the configured shutdown timeout. Run
// returns an errgroup-compatible closure that treats cancellation as a clean
// exit.
package server
