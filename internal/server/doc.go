// Package server runs the application's HTTP transport and owns its
// lifecycle.
//
// The lifecycle is a monotonic state machine: Configuring, Serving,
// Stopping, Drained. Stop signals (SIGTERM, SIGINT, SIGQUIT, or an
// explicit Shutdown call) trigger a graceful drain of in-flight requests
// bounded by the configured drain timeout; duplicate signals during the
// drain are ignored. The final log records are written and the log sink
// is flushed before control returns to the caller.
package server
